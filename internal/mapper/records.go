package mapper

import (
	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/source"
)

func MapProject(item source.Item) *domain.Record {
	p := item.Properties
	return newRecord(domain.TypeProjects, item, &domain.ProjectFields{
		Title:       source.TitleText(p, "Name"),
		Description: source.Text(p, "Description"),
		URL:         source.URLValue(p, "URL"),
		RepoURL:     source.URLValue(p, "Repo"),
		Colors: domain.Colors{
			Primary:   source.Text(p, "Primary Color"),
			Secondary: source.Text(p, "Secondary Color"),
		},
		Tags:     source.MultiSelect(p, "Tags"),
		Featured: source.Checkbox(p, "Featured"),
	})
}

func MapFreelance(item source.Item) *domain.Record {
	p := item.Properties
	return newRecord(domain.TypeFreelance, item, &domain.FreelanceFields{
		Title:       source.TitleText(p, "Name"),
		Description: source.Text(p, "Description"),
		URL:         source.URLValue(p, "URL"),
		Client:      source.Text(p, "Client"),
		Date:        source.Date(p, "Date"),
		Tags:        source.MultiSelect(p, "Tags"),
	})
}

func MapResearch(item source.Item) *domain.Record {
	p := item.Properties
	return newRecord(domain.TypeResearch, item, &domain.ResearchFields{
		Title:       source.TitleText(p, "Name"),
		Description: source.Text(p, "Description"),
		URL:         source.URLValue(p, "URL"),
		Status:      source.SelectValue(p, "Status"),
		References:  source.MultiSelect(p, "References"),
	})
}

func MapContribution(item source.Item) *domain.Record {
	p := item.Properties
	return newRecord(domain.TypeContributions, item, &domain.ContributionFields{
		Title:       source.TitleText(p, "Name"),
		Description: source.Text(p, "Description"),
		RepoURL:     source.URLValue(p, "Repo"),
		Stars:       source.Int(p, "Stars"),
		Downloads:   source.Int(p, "Downloads"),
		Version:     source.Text(p, "Version"),
	})
}

// MapPost maps the long-form content type. Body starts as the excerpt; the
// orchestrator substitutes rendered block content when a block fetch yields
// non-empty text.
func MapPost(item source.Item) *domain.Record {
	p := item.Properties
	excerpt := source.Text(p, "Excerpt")
	return newRecord(domain.TypePosts, item, &domain.PostFields{
		Title:   source.TitleText(p, "Name"),
		Slug:    source.Text(p, "Slug"),
		Excerpt: excerpt,
		Body:    excerpt,
		Date:    source.Date(p, "Date"),
		Tags:    source.MultiSelect(p, "Tags"),
	})
}

func MapIdea(item source.Item) *domain.Record {
	p := item.Properties
	return newRecord(domain.TypeIdeas, item, &domain.IdeaFields{
		Title:       source.TitleText(p, "Name"),
		Description: source.Text(p, "Description"),
		Status:      source.SelectValue(p, "Status"),
	})
}

func MapActivity(item source.Item) *domain.Record {
	p := item.Properties
	return newRecord(domain.TypeActivities, item, &domain.ActivityFields{
		Title: source.TitleText(p, "Name"),
		Kind:  source.SelectValue(p, "Kind"),
		Date:  source.Date(p, "Date"),
		URL:   source.URLValue(p, "URL"),
	})
}

func MapLinkList(item source.Item) *domain.Record {
	p := item.Properties
	return newRecord(domain.TypeLinks, item, &domain.LinkListFields{
		Title: source.TitleText(p, "Name"),
		Links: parseLinkList(source.Text(p, "Links")),
	})
}

// MapAvailability maps the singleton status record; the orchestrator only
// honors the first item of the collection.
func MapAvailability(item source.Item) *domain.Record {
	p := item.Properties
	return newRecord(domain.TypeAvailability, item, &domain.AvailabilityFields{
		Status:  source.SelectValue(p, "Status"),
		Message: source.Text(p, "Message"),
	})
}
