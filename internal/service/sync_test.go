package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"portfolio_sync/internal/config"
	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/service/mocks"
	"portfolio_sync/internal/source"
)

type SyncOrchestratorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	client    *mocks.MockSourceClient
	store     *mocks.MockRecordStore
	publisher *mocks.MockPublisher

	cfg *config.Config
	ctx context.Context
}

func (s *SyncOrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = mocks.NewMockSourceClient(s.ctrl)
	s.store = mocks.NewMockRecordStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.ctx = context.Background()

	s.cfg = &config.Config{
		Source: config.SourceConfig{
			Token: "tok",
			Types: map[string]config.TypeConfig{},
		},
	}
}

func (s *SyncOrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(SyncOrchestratorTestSuite))
}

// configure binds content types to source collections named col-<type>.
func (s *SyncOrchestratorTestSuite) configure(types ...domain.ContentType) {
	for _, t := range types {
		s.cfg.Source.Types[string(t)] = config.TypeConfig{Collection: "col-" + string(t)}
	}
}

func (s *SyncOrchestratorTestSuite) newOrchestrator(pub Publisher) *Orchestrator {
	reconciler := NewReconciler(s.store, testLogger())
	return NewOrchestrator(s.cfg, s.client, reconciler, pub, testLogger())
}

func titledItem(id, title string) source.Item {
	return source.Item{
		ID: id,
		Properties: source.Properties{
			"Name": {Kind: source.KindTitle, Title: []source.TextSpan{{PlainText: title}}},
		},
	}
}

func (s *SyncOrchestratorTestSuite) TestDisabledTypeIsSkippedSilently() {
	s.configure(domain.TypeProjects)

	// Only the configured type touches the network; the mock controller
	// fails the test on any fetch for an unconfigured type.
	s.client.EXPECT().
		FetchCollection(s.ctx, "tok", "col-projects").
		Return([]source.Item{}, nil)

	report := s.newOrchestrator(nil).SyncAll(s.ctx)

	s.Require().Contains(report.Results, domain.TypeProjects)
	s.Equal(domain.TypeResult{Synced: 0, Errors: 0}, report.Results[domain.TypeProjects])
	s.NotContains(report.Results, domain.TypeLinks)
	s.Len(report.Results, 1)
}

func (s *SyncOrchestratorTestSuite) TestPartialFailureIsolation() {
	s.configure(domain.TypeIdeas)

	items := []source.Item{
		titledItem("i-1", "one"),
		titledItem("i-2", "two"),
		titledItem("i-3", "three"),
	}

	s.client.EXPECT().
		FetchCollection(s.ctx, "tok", "col-ideas").
		Return(items, nil)

	s.store.EXPECT().Get(s.ctx, domain.TypeIdeas, gomock.Any()).Return(nil, nil).Times(3)
	s.store.EXPECT().Insert(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.Record) (int64, error) {
			if rec.ExternalID == "i-2" {
				return 0, errors.New("write rejected")
			}
			return 100, nil
		},
	).Times(3)

	report := s.newOrchestrator(nil).SyncAll(s.ctx)

	s.Equal(domain.TypeResult{Synced: 2, Errors: 1}, report.Results[domain.TypeIdeas])
}

func (s *SyncOrchestratorTestSuite) TestSingletonHonorsFirstRecordOnly() {
	s.configure(domain.TypeAvailability)

	items := []source.Item{
		{ID: "a-1", Properties: source.Properties{
			"Status": {Kind: source.KindSelect, Select: &source.Option{Name: "available"}},
		}},
		{ID: "a-2", Properties: source.Properties{
			"Status": {Kind: source.KindSelect, Select: &source.Option{Name: "busy"}},
		}},
	}

	s.client.EXPECT().
		FetchCollection(s.ctx, "tok", "col-availability").
		Return(items, nil)

	s.store.EXPECT().Get(s.ctx, domain.TypeAvailability, "a-1").Return(nil, nil)
	s.store.EXPECT().Insert(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.Record) (int64, error) {
			s.Equal("a-1", rec.ExternalID)
			s.Equal("available", rec.Fields.(*domain.AvailabilityFields).Status)
			return 1, nil
		},
	)

	report := s.newOrchestrator(nil).SyncAll(s.ctx)

	s.Equal(domain.TypeResult{Synced: 1, Errors: 0}, report.Results[domain.TypeAvailability])
}

func (s *SyncOrchestratorTestSuite) TestLongFormBodySubstitution() {
	s.configure(domain.TypePosts)

	item := source.Item{
		ID: "post-1",
		Properties: source.Properties{
			"Name":    {Kind: source.KindTitle, Title: []source.TextSpan{{PlainText: "On Syncing"}}},
			"Excerpt": {Kind: source.KindText, Text: []source.TextSpan{{PlainText: "short version"}}},
		},
	}

	s.client.EXPECT().
		FetchCollection(s.ctx, "tok", "col-posts").
		Return([]source.Item{item}, nil)
	s.client.EXPECT().
		FetchBlocks(s.ctx, "tok", "post-1").
		Return([]domain.Block{
			{Kind: domain.BlockHeading2, Text: "The Problem"},
			{Kind: domain.BlockParagraph, Text: "body"},
		}, nil)

	s.store.EXPECT().Get(s.ctx, domain.TypePosts, "post-1").Return(nil, nil)
	s.store.EXPECT().Insert(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.Record) (int64, error) {
			fields := rec.Fields.(*domain.PostFields)
			s.Equal("## The Problem\n\nbody", fields.Body, "rendered blocks replace the excerpt")
			s.Equal("short version", fields.Excerpt)
			return 1, nil
		},
	)

	report := s.newOrchestrator(nil).SyncAll(s.ctx)

	s.Equal(domain.TypeResult{Synced: 1, Errors: 0}, report.Results[domain.TypePosts])
}

func (s *SyncOrchestratorTestSuite) TestBlockFetchFailureKeepsExcerpt() {
	s.configure(domain.TypePosts)

	item := source.Item{
		ID: "post-1",
		Properties: source.Properties{
			"Excerpt": {Kind: source.KindText, Text: []source.TextSpan{{PlainText: "short version"}}},
		},
	}

	s.client.EXPECT().
		FetchCollection(s.ctx, "tok", "col-posts").
		Return([]source.Item{item}, nil)
	s.client.EXPECT().
		FetchBlocks(s.ctx, "tok", "post-1").
		Return(nil, errors.New("blocks unavailable"))

	s.store.EXPECT().Get(s.ctx, domain.TypePosts, "post-1").Return(nil, nil)
	s.store.EXPECT().Insert(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.Record) (int64, error) {
			s.Equal("short version", rec.Fields.(*domain.PostFields).Body)
			return 1, nil
		},
	)

	report := s.newOrchestrator(nil).SyncAll(s.ctx)

	s.Equal(domain.TypeResult{Synced: 1, Errors: 0}, report.Results[domain.TypePosts])
}

func (s *SyncOrchestratorTestSuite) TestFetchErrorProceedsWithPartialResults() {
	s.configure(domain.TypeIdeas)

	s.client.EXPECT().
		FetchCollection(s.ctx, "tok", "col-ideas").
		Return([]source.Item{titledItem("i-1", "one")}, errors.New("page 2 unreachable"))

	s.store.EXPECT().Get(s.ctx, domain.TypeIdeas, "i-1").Return(nil, nil)
	s.store.EXPECT().Insert(s.ctx, gomock.Any()).Return(int64(1), nil)

	report := s.newOrchestrator(nil).SyncAll(s.ctx)

	s.Equal(domain.TypeResult{Synced: 1, Errors: 0}, report.Results[domain.TypeIdeas])
}

func (s *SyncOrchestratorTestSuite) TestOneTypeFailureDoesNotStopOthers() {
	s.configure(domain.TypeProjects, domain.TypeIdeas)

	s.client.EXPECT().
		FetchCollection(s.ctx, "tok", "col-projects").
		Return(nil, errors.New("collection gone"))
	s.client.EXPECT().
		FetchCollection(s.ctx, "tok", "col-ideas").
		Return([]source.Item{titledItem("i-1", "one")}, nil)

	s.store.EXPECT().Get(s.ctx, domain.TypeIdeas, "i-1").Return(nil, nil)
	s.store.EXPECT().Insert(s.ctx, gomock.Any()).Return(int64(1), nil)

	report := s.newOrchestrator(nil).SyncAll(s.ctx)

	s.Equal(domain.TypeResult{Synced: 0, Errors: 0}, report.Results[domain.TypeProjects])
	s.Equal(domain.TypeResult{Synced: 1, Errors: 0}, report.Results[domain.TypeIdeas])
}

func (s *SyncOrchestratorTestSuite) TestPublisherNotifiedOnUpsert() {
	s.configure(domain.TypeIdeas)

	s.client.EXPECT().
		FetchCollection(s.ctx, "tok", "col-ideas").
		Return([]source.Item{titledItem("i-1", "one")}, nil)

	s.store.EXPECT().Get(s.ctx, domain.TypeIdeas, "i-1").Return(nil, nil)
	s.store.EXPECT().Insert(s.ctx, gomock.Any()).Return(int64(5), nil)

	s.publisher.EXPECT().Publish(s.ctx, gomock.Any(), true).DoAndReturn(
		func(_ context.Context, rec *domain.Record, _ bool) error {
			s.Equal(int64(5), rec.TargetID)
			return nil
		},
	)

	report := s.newOrchestrator(s.publisher).SyncAll(s.ctx)

	s.Equal(domain.TypeResult{Synced: 1, Errors: 0}, report.Results[domain.TypeIdeas])
}

func (s *SyncOrchestratorTestSuite) TestPublishFailureDoesNotCountAsRecordError() {
	s.configure(domain.TypeIdeas)

	s.client.EXPECT().
		FetchCollection(s.ctx, "tok", "col-ideas").
		Return([]source.Item{titledItem("i-1", "one")}, nil)

	s.store.EXPECT().Get(s.ctx, domain.TypeIdeas, "i-1").Return(nil, nil)
	s.store.EXPECT().Insert(s.ctx, gomock.Any()).Return(int64(5), nil)
	s.publisher.EXPECT().Publish(s.ctx, gomock.Any(), true).Return(errors.New("broker down"))

	report := s.newOrchestrator(s.publisher).SyncAll(s.ctx)

	s.Equal(domain.TypeResult{Synced: 1, Errors: 0}, report.Results[domain.TypeIdeas])
}
