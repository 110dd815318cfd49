package domain

import "strings"

// Sort names a campaign list ordering.
type Sort string

const (
	SortUrgency       Sort = "urgency"
	SortName          Sort = "name"
	SortDateAddedAsc  Sort = "dateAddedAsc"
	SortDateAddedDesc Sort = "dateAddedDesc"
	SortEndDate       Sort = "endDate"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParseSort maps a client-supplied key to a Sort. Unknown or empty keys
// fall back to SortUrgency.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortName, SortDateAddedAsc, SortDateAddedDesc, SortEndDate, SortUrgency:
		return Sort(s)
	default:
		return SortUrgency
	}
}

// ListOptions are the parameters of a campaign list read. Page is
// 0-indexed; a returned page shorter than PageSize is the last one.
type ListOptions struct {
	Search        string
	Sort          Sort
	Page          int
	PageSize      int
	IncludeHidden bool
}

// Normalize trims the search text and clamps paging to valid values.
func (o ListOptions) Normalize() ListOptions {
	o.Search = strings.TrimSpace(o.Search)
	o.Sort = ParseSort(string(o.Sort))
	if o.Page < 0 {
		o.Page = 0
	}
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	if o.PageSize > MaxPageSize {
		o.PageSize = MaxPageSize
	}
	return o
}
