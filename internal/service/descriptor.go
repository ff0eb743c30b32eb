package service

import (
	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/mapper"
)

// descriptor declares how one content type is synced. The orchestrator is
// driven by this table rather than nine near-identical sync functions.
type descriptor struct {
	Type domain.ContentType
	Map  mapper.Func

	// FetchBody marks the long-form type needing an extra per-record
	// block fetch and render pass.
	FetchBody bool

	// Singleton clamps the type to the first record of the first page;
	// further records are ignored without error.
	Singleton bool
}

var descriptors = []descriptor{
	{Type: domain.TypeProjects, Map: mapper.MapProject},
	{Type: domain.TypeFreelance, Map: mapper.MapFreelance},
	{Type: domain.TypeResearch, Map: mapper.MapResearch},
	{Type: domain.TypeContributions, Map: mapper.MapContribution},
	{Type: domain.TypePosts, Map: mapper.MapPost, FetchBody: true},
	{Type: domain.TypeIdeas, Map: mapper.MapIdea},
	{Type: domain.TypeActivities, Map: mapper.MapActivity},
	{Type: domain.TypeLinks, Map: mapper.MapLinkList},
	{Type: domain.TypeAvailability, Map: mapper.MapAvailability, Singleton: true},
}
