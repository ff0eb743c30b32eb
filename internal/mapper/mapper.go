// Package mapper turns raw source items into typed records and back. Each
// content type has one forward mapper composing the property extractors and
// one inverse builder used by the reverse push direction. Mappers apply no
// business logic beyond structural assembly.
package mapper

import (
	"encoding/json"

	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/source"
)

// Func maps one raw source item to its typed record. The record's
// ExternalID is always the item's own stable identifier.
type Func func(item source.Item) *domain.Record

// Inverse builds the source-side creation payload for one target record.
// The second return is false when the record's fields have an unexpected
// shape for the content type.
type Inverse func(rec *domain.Record) (source.Properties, bool)

// ForType returns the forward mapper for a content type.
func ForType(t domain.ContentType) Func {
	switch t {
	case domain.TypeProjects:
		return MapProject
	case domain.TypeFreelance:
		return MapFreelance
	case domain.TypeResearch:
		return MapResearch
	case domain.TypeContributions:
		return MapContribution
	case domain.TypePosts:
		return MapPost
	case domain.TypeIdeas:
		return MapIdea
	case domain.TypeActivities:
		return MapActivity
	case domain.TypeLinks:
		return MapLinkList
	case domain.TypeAvailability:
		return MapAvailability
	default:
		return nil
	}
}

// InverseForType returns the push payload builder for a content type.
func InverseForType(t domain.ContentType) Inverse {
	switch t {
	case domain.TypeProjects:
		return projectProperties
	case domain.TypeFreelance:
		return freelanceProperties
	case domain.TypeResearch:
		return researchProperties
	case domain.TypeContributions:
		return contributionProperties
	case domain.TypePosts:
		return postProperties
	case domain.TypeIdeas:
		return ideaProperties
	case domain.TypeActivities:
		return activityProperties
	case domain.TypeLinks:
		return linkListProperties
	case domain.TypeAvailability:
		return availabilityProperties
	default:
		return nil
	}
}

// newRecord fills the attributes every content type shares.
func newRecord(t domain.ContentType, item source.Item, fields any) *domain.Record {
	return &domain.Record{
		Type:       t,
		ExternalID: item.ID,
		Order:      source.Int(item.Properties, "Order"),
		Published:  source.Checkbox(item.Properties, "Published"),
		Fields:     fields,
	}
}

// parseLinkList decodes a serialized list of {label, url} pairs from a text
// property. The source system cannot represent the list as a composite
// property, so it arrives as embedded JSON; any parse failure degrades to
// an empty list, never an error.
func parseLinkList(raw string) []domain.LinkItem {
	if raw == "" {
		return []domain.LinkItem{}
	}
	var links []domain.LinkItem
	if err := json.Unmarshal([]byte(raw), &links); err != nil || links == nil {
		return []domain.LinkItem{}
	}
	return links
}
