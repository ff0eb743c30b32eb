package domain

import "time"

// ContentType identifies one of the independently synced record shapes.
type ContentType string

const (
	TypeProjects      ContentType = "projects"
	TypeFreelance     ContentType = "freelance"
	TypeResearch      ContentType = "research"
	TypeContributions ContentType = "contributions"
	TypePosts         ContentType = "posts"
	TypeIdeas         ContentType = "ideas"
	TypeActivities    ContentType = "activities"
	TypeLinks         ContentType = "links"
	TypeAvailability  ContentType = "availability"
)

// AllTypes lists every content type in sync order.
var AllTypes = []ContentType{
	TypeProjects,
	TypeFreelance,
	TypeResearch,
	TypeContributions,
	TypePosts,
	TypeIdeas,
	TypeActivities,
	TypeLinks,
	TypeAvailability,
}

func (t ContentType) Valid() bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Record is the transient, typed form of one source item. It is rebuilt
// from source data on every pass and discarded after reconciliation; the
// target store holds the durable state.
type Record struct {
	// TargetID is assigned by the target store on first insert and never
	// changes across repeated syncs of the same ExternalID. Zero before
	// the first successful upsert.
	TargetID int64

	Type ContentType

	// ExternalID is the source system's own stable identifier, the
	// natural key preventing duplicate target records.
	ExternalID string

	Order     int
	Published bool
	SyncedAt  time.Time

	// Fields holds the variant-specific payload, one of the *Fields
	// structs below.
	Fields any
}

// LinkItem is one entry of an embedded {label, url} list.
type LinkItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Colors groups the color tokens a project carries for the site theme.
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type ProjectFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	RepoURL     string   `json:"repo_url"`
	Colors      Colors   `json:"colors"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

type FreelanceFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Client      string   `json:"client"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
}

type ResearchFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Status      string   `json:"status"`
	References  []string `json:"references"`
}

type ContributionFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RepoURL     string `json:"repo_url"`
	Stars       int    `json:"stars"`
	Downloads   int    `json:"downloads"`
	Version     string `json:"version"`
}

type PostFields struct {
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Excerpt string   `json:"excerpt"`
	Body    string   `json:"body"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags"`
}

type IdeaFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type ActivityFields struct {
	Title string `json:"title"`
	Kind  string `json:"kind"`
	Date  string `json:"date"`
	URL   string `json:"url"`
}

type LinkListFields struct {
	Title string     `json:"title"`
	Links []LinkItem `json:"links"`
}

type AvailabilityFields struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewFields returns a pointer to the zero fields struct for the given
// content type, used when decoding stored records.
func NewFields(t ContentType) any {
	switch t {
	case TypeProjects:
		return &ProjectFields{}
	case TypeFreelance:
		return &FreelanceFields{}
	case TypeResearch:
		return &ResearchFields{}
	case TypeContributions:
		return &ContributionFields{}
	case TypePosts:
		return &PostFields{}
	case TypeIdeas:
		return &IdeaFields{}
	case TypeActivities:
		return &ActivityFields{}
	case TypeLinks:
		return &LinkListFields{}
	case TypeAvailability:
		return &AvailabilityFields{}
	default:
		return &map[string]any{}
	}
}
