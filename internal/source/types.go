package source

// Property kinds as declared by the source API. The source schema is not
// statically enforced; extractors in properties.go narrow these defensively.
const (
	KindText        = "text"
	KindTitle       = "title"
	KindNumber      = "number"
	KindCheckbox    = "checkbox"
	KindSelect      = "select"
	KindMultiSelect = "multi_select"
	KindURL         = "url"
	KindDate        = "date"
)

// Item is one raw document returned by a collection query.
type Item struct {
	ID         string     `json:"id"`
	Properties Properties `json:"properties"`
}

// Properties is the loosely-typed property bag of an item.
type Properties map[string]Property

// Property is a tagged union over the known property shapes. Exactly one
// payload field is populated, matching Kind.
type Property struct {
	Kind        string     `json:"type"`
	Text        []TextSpan `json:"text,omitempty"`
	Title       []TextSpan `json:"title,omitempty"`
	Number      *float64   `json:"number,omitempty"`
	Checkbox    *bool      `json:"checkbox,omitempty"`
	Select      *Option    `json:"select,omitempty"`
	MultiSelect []Option   `json:"multi_select,omitempty"`
	URL         *string    `json:"url,omitempty"`
	Date        *DateSpec  `json:"date,omitempty"`
}

type TextSpan struct {
	PlainText string `json:"plain_text"`
}

type Option struct {
	Name string `json:"name"`
}

type DateSpec struct {
	Start string `json:"start"` // ISO date
}

type queryRequest struct {
	Cursor   string `json:"cursor,omitempty"`
	PageSize int    `json:"pageSize"`
}

type queryResponse struct {
	Results    []Item `json:"results"`
	HasMore    bool   `json:"hasMore"`
	NextCursor string `json:"nextCursor"`
}

type blockListResponse struct {
	Results []wireBlock `json:"results"`
}

// wireBlock is the raw block shape; the client flattens spans into
// domain.Block before handing blocks to the renderer.
type wireBlock struct {
	Kind     string     `json:"type"`
	Text     []TextSpan `json:"text"`
	Language string     `json:"language,omitempty"`
}

type createItemRequest struct {
	ParentCollection string     `json:"parentCollection"`
	Properties       Properties `json:"properties"`
}
