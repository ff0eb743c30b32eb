package source

// Builders construct well-formed properties for item creation, inverting
// the extractor layout. Used by the reverse push direction only.

func NewText(s string) Property {
	return Property{Kind: KindText, Text: []TextSpan{{PlainText: s}}}
}

func NewTitle(s string) Property {
	return Property{Kind: KindTitle, Title: []TextSpan{{PlainText: s}}}
}

func NewNumber(n float64) Property {
	return Property{Kind: KindNumber, Number: &n}
}

func NewCheckbox(b bool) Property {
	return Property{Kind: KindCheckbox, Checkbox: &b}
}

func NewSelect(label string) Property {
	if label == "" {
		return Property{Kind: KindSelect}
	}
	return Property{Kind: KindSelect, Select: &Option{Name: label}}
}

func NewMultiSelect(labels []string) Property {
	opts := make([]Option, 0, len(labels))
	for _, l := range labels {
		opts = append(opts, Option{Name: l})
	}
	return Property{Kind: KindMultiSelect, MultiSelect: opts}
}

func NewURL(u string) Property {
	return Property{Kind: KindURL, URL: &u}
}

func NewDate(iso string) Property {
	if iso == "" {
		return Property{Kind: KindDate}
	}
	return Property{Kind: KindDate, Date: &DateSpec{Start: iso}}
}
