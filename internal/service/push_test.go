package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portfolio_sync/internal/config"
	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/service/mocks"
	"portfolio_sync/internal/source"
)

func pushFixture(t *testing.T) (*Pusher, *mocks.MockSourceClient, *mocks.MockRecordStore) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockSourceClient(ctrl)
	store := mocks.NewMockRecordStore(ctrl)

	cfg := &config.Config{
		Source: config.SourceConfig{
			Token: "tok",
			Types: map[string]config.TypeConfig{
				"projects": {Collection: "col-projects"},
			},
		},
	}

	return NewPusher(cfg, client, store, testLogger()), client, store
}

func storedProject(id int64, externalID, title string) domain.Record {
	return domain.Record{
		TargetID:   id,
		Type:       domain.TypeProjects,
		ExternalID: externalID,
		Published:  true,
		Fields:     &domain.ProjectFields{Title: title, Tags: []string{}},
	}
}

func TestPushCreatesOneSourceItemPerRecord(t *testing.T) {
	pusher, client, store := pushFixture(t)
	ctx := context.Background()

	store.EXPECT().ListByType(ctx, domain.TypeProjects).Return([]domain.Record{
		storedProject(1, "p-1", "One"),
		storedProject(2, "p-2", "Two"),
	}, nil)

	client.EXPECT().CreateItem(ctx, "tok", "col-projects", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, props source.Properties) (*source.Item, error) {
			require.Contains(t, props, "Name")
			return &source.Item{ID: "new-" + source.TitleText(props, "Name"), Properties: props}, nil
		},
	).Times(2)

	created, err := pusher.Push(ctx, domain.TypeProjects)
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestPushSkipsFailedCreations(t *testing.T) {
	pusher, client, store := pushFixture(t)
	ctx := context.Background()

	store.EXPECT().ListByType(ctx, domain.TypeProjects).Return([]domain.Record{
		storedProject(1, "p-1", "One"),
		storedProject(2, "p-2", "Two"),
	}, nil)

	gomock.InOrder(
		client.EXPECT().CreateItem(ctx, "tok", "col-projects", gomock.Any()).
			Return(nil, errors.New("creation rejected")),
		client.EXPECT().CreateItem(ctx, "tok", "col-projects", gomock.Any()).
			Return(&source.Item{ID: "new-2"}, nil),
	)

	created, err := pusher.Push(ctx, domain.TypeProjects)
	require.NoError(t, err)
	assert.Len(t, created, 1)
}

func TestPushSkipsRecordsWithUnexpectedShape(t *testing.T) {
	pusher, client, store := pushFixture(t)
	ctx := context.Background()

	store.EXPECT().ListByType(ctx, domain.TypeProjects).Return([]domain.Record{
		{
			TargetID:   1,
			Type:       domain.TypeProjects,
			ExternalID: "p-1",
			Fields:     &domain.IdeaFields{Title: "not a project"},
		},
		storedProject(2, "p-2", "Two"),
	}, nil)

	client.EXPECT().CreateItem(ctx, "tok", "col-projects", gomock.Any()).
		Return(&source.Item{ID: "new-2"}, nil)

	created, err := pusher.Push(ctx, domain.TypeProjects)
	require.NoError(t, err)
	assert.Len(t, created, 1)
}

func TestPushFailsForUnconfiguredType(t *testing.T) {
	pusher, _, _ := pushFixture(t)

	_, err := pusher.Push(context.Background(), domain.TypeLinks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no source binding")
}

func TestPushFailsForUnknownType(t *testing.T) {
	pusher, _, _ := pushFixture(t)

	_, err := pusher.Push(context.Background(), "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown content type")
}

func TestPushAbortsWhenListingFails(t *testing.T) {
	pusher, _, store := pushFixture(t)
	ctx := context.Background()

	store.EXPECT().ListByType(ctx, domain.TypeProjects).Return(nil, errors.New("store offline"))

	_, err := pusher.Push(ctx, domain.TypeProjects)
	require.Error(t, err)
}
