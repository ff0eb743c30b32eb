package source

import "strings"

// Extractors narrow one property to one typed value. They never fail: an
// absent property or a kind mismatch yields the kind's zero value, so every
// downstream component can assume well-typed, present fields.

// Text returns the concatenated plain text of a text property.
func Text(props Properties, name string) string {
	p, ok := props[name]
	if !ok || p.Kind != KindText {
		return ""
	}
	return joinSpans(p.Text)
}

// TitleText returns the first segment of a title property.
func TitleText(props Properties, name string) string {
	p, ok := props[name]
	if !ok || p.Kind != KindTitle || len(p.Title) == 0 {
		return ""
	}
	return p.Title[0].PlainText
}

// Number returns the numeric value of a number property.
func Number(props Properties, name string) float64 {
	p, ok := props[name]
	if !ok || p.Kind != KindNumber || p.Number == nil {
		return 0
	}
	return *p.Number
}

// Int returns a number property truncated to int.
func Int(props Properties, name string) int {
	return int(Number(props, name))
}

// Checkbox returns the boolean value of a checkbox property.
func Checkbox(props Properties, name string) bool {
	p, ok := props[name]
	if !ok || p.Kind != KindCheckbox || p.Checkbox == nil {
		return false
	}
	return *p.Checkbox
}

// SelectValue returns the chosen label of a single-choice property.
func SelectValue(props Properties, name string) string {
	p, ok := props[name]
	if !ok || p.Kind != KindSelect || p.Select == nil {
		return ""
	}
	return p.Select.Name
}

// MultiSelect returns the chosen labels of a multi-choice property. The
// result is never nil.
func MultiSelect(props Properties, name string) []string {
	p, ok := props[name]
	if !ok || p.Kind != KindMultiSelect {
		return []string{}
	}
	labels := make([]string, 0, len(p.MultiSelect))
	for _, opt := range p.MultiSelect {
		labels = append(labels, opt.Name)
	}
	return labels
}

// URLValue returns the value of a hyperlink property.
func URLValue(props Properties, name string) string {
	p, ok := props[name]
	if !ok || p.Kind != KindURL || p.URL == nil {
		return ""
	}
	return *p.URL
}

// Date returns the ISO start date of a date property.
func Date(props Properties, name string) string {
	p, ok := props[name]
	if !ok || p.Kind != KindDate || p.Date == nil {
		return ""
	}
	return p.Date.Start
}

func joinSpans(spans []TextSpan) string {
	if len(spans) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.PlainText)
	}
	return sb.String()
}
