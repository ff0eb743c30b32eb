package mapper

import (
	"encoding/json"

	"portfolio_sync/internal/domain"
	"portfolio_sync/internal/source"
)

// Inverse builders reconstruct the property layout the forward mappers
// read. They share the common attributes and add the variant fields.

func commonProperties(rec *domain.Record) source.Properties {
	return source.Properties{
		"Order":     source.NewNumber(float64(rec.Order)),
		"Published": source.NewCheckbox(rec.Published),
	}
}

func projectProperties(rec *domain.Record) (source.Properties, bool) {
	f, ok := rec.Fields.(*domain.ProjectFields)
	if !ok {
		return nil, false
	}
	props := commonProperties(rec)
	props["Name"] = source.NewTitle(f.Title)
	props["Description"] = source.NewText(f.Description)
	props["URL"] = source.NewURL(f.URL)
	props["Repo"] = source.NewURL(f.RepoURL)
	props["Primary Color"] = source.NewText(f.Colors.Primary)
	props["Secondary Color"] = source.NewText(f.Colors.Secondary)
	props["Tags"] = source.NewMultiSelect(f.Tags)
	props["Featured"] = source.NewCheckbox(f.Featured)
	return props, true
}

func freelanceProperties(rec *domain.Record) (source.Properties, bool) {
	f, ok := rec.Fields.(*domain.FreelanceFields)
	if !ok {
		return nil, false
	}
	props := commonProperties(rec)
	props["Name"] = source.NewTitle(f.Title)
	props["Description"] = source.NewText(f.Description)
	props["URL"] = source.NewURL(f.URL)
	props["Client"] = source.NewText(f.Client)
	props["Date"] = source.NewDate(f.Date)
	props["Tags"] = source.NewMultiSelect(f.Tags)
	return props, true
}

func researchProperties(rec *domain.Record) (source.Properties, bool) {
	f, ok := rec.Fields.(*domain.ResearchFields)
	if !ok {
		return nil, false
	}
	props := commonProperties(rec)
	props["Name"] = source.NewTitle(f.Title)
	props["Description"] = source.NewText(f.Description)
	props["URL"] = source.NewURL(f.URL)
	props["Status"] = source.NewSelect(f.Status)
	props["References"] = source.NewMultiSelect(f.References)
	return props, true
}

func contributionProperties(rec *domain.Record) (source.Properties, bool) {
	f, ok := rec.Fields.(*domain.ContributionFields)
	if !ok {
		return nil, false
	}
	props := commonProperties(rec)
	props["Name"] = source.NewTitle(f.Title)
	props["Description"] = source.NewText(f.Description)
	props["Repo"] = source.NewURL(f.RepoURL)
	props["Stars"] = source.NewNumber(float64(f.Stars))
	props["Downloads"] = source.NewNumber(float64(f.Downloads))
	props["Version"] = source.NewText(f.Version)
	return props, true
}

func postProperties(rec *domain.Record) (source.Properties, bool) {
	f, ok := rec.Fields.(*domain.PostFields)
	if !ok {
		return nil, false
	}
	props := commonProperties(rec)
	props["Name"] = source.NewTitle(f.Title)
	props["Slug"] = source.NewText(f.Slug)
	props["Excerpt"] = source.NewText(f.Excerpt)
	props["Date"] = source.NewDate(f.Date)
	props["Tags"] = source.NewMultiSelect(f.Tags)
	return props, true
}

func ideaProperties(rec *domain.Record) (source.Properties, bool) {
	f, ok := rec.Fields.(*domain.IdeaFields)
	if !ok {
		return nil, false
	}
	props := commonProperties(rec)
	props["Name"] = source.NewTitle(f.Title)
	props["Description"] = source.NewText(f.Description)
	props["Status"] = source.NewSelect(f.Status)
	return props, true
}

func activityProperties(rec *domain.Record) (source.Properties, bool) {
	f, ok := rec.Fields.(*domain.ActivityFields)
	if !ok {
		return nil, false
	}
	props := commonProperties(rec)
	props["Name"] = source.NewTitle(f.Title)
	props["Kind"] = source.NewSelect(f.Kind)
	props["Date"] = source.NewDate(f.Date)
	props["URL"] = source.NewURL(f.URL)
	return props, true
}

func linkListProperties(rec *domain.Record) (source.Properties, bool) {
	f, ok := rec.Fields.(*domain.LinkListFields)
	if !ok {
		return nil, false
	}
	serialized, err := json.Marshal(f.Links)
	if err != nil {
		serialized = []byte("[]")
	}
	props := commonProperties(rec)
	props["Name"] = source.NewTitle(f.Title)
	props["Links"] = source.NewText(string(serialized))
	return props, true
}

func availabilityProperties(rec *domain.Record) (source.Properties, bool) {
	f, ok := rec.Fields.(*domain.AvailabilityFields)
	if !ok {
		return nil, false
	}
	props := commonProperties(rec)
	props["Status"] = source.NewSelect(f.Status)
	props["Message"] = source.NewText(f.Message)
	return props, true
}
