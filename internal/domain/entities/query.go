package entities

const (
	SortByCreatedDate     = "created_date"
	SortByLastUpdatedDate = "last_updated_date"
)

// ConversationFilter narrows a listing. Empty fields match everything.
type ConversationFilter struct {
	CreatedBy string
}

type SortOrder struct {
	Field      string
	Descending bool
}

// DefaultSort orders conversations newest first.
var DefaultSort = SortOrder{Field: SortByCreatedDate, Descending: true}

// Projection limits the fields loaded by a point lookup.
type Projection struct {
	ExcludeMessages bool
}
