package types

// Category classifies a project record.
type Category string

const (
	CategoryWeb   Category = "web"
	CategoryData  Category = "data"
	CategoryOther Category = "other"
)

// Project is a single portfolio entry. The catalog is fixed at startup;
// records are never created or modified at runtime.
type Project struct {
	ID          int
	Title       string
	Date        string // ISO date (YYYY-MM-DD), so lexical order == chronological
	Category    Category
	Description string
}

// SortMode controls project ordering.
type SortMode string

const (
	SortNewest SortMode = "newest"
	SortOldest SortMode = "oldest"
	SortTitle  SortMode = "title"
)

// SportTopic identifies one encyclopedia article to summarize.
type SportTopic struct {
	Key   string // stable internal key, e.g. "soccer"
	Title string // human-readable display title
	Ref   string // Wikipedia article reference, e.g. "Association_football"
}

// SportSummary is the per-topic result of one fetch batch. Either a live
// API result or a substituted fallback; it only lives for the batch.
type SportSummary struct {
	Key      string
	Title    string
	Summary  string
	Image    string // thumbnail URL, empty if none
	URL      string
	Fallback bool // true when the live fetch failed and a bundled record was used
}

// Draft is the subject/body/help triple suggested for the contact form.
// Empty fields mean "leave the form field untouched".
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Help    string `json:"help"`
}
