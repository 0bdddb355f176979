package domain

// SortKey selects the ordering applied to the eligible project set.
type SortKey string

const (
	// SortRecency orders by last update, most recent first. It is the
	// default and the fallback for any key we do not recognize.
	SortRecency SortKey = "recency"
	// SortPopularity orders by star count, descending. Ties keep their
	// incoming relative order.
	SortPopularity SortKey = "popularity"
	// SortName orders by project name, ascending, using locale-aware
	// collation.
	SortName SortKey = "name"
)

// ParseSortKey maps a user-supplied string to a SortKey. Unrecognized input
// falls back to SortRecency rather than erroring.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortRecency, SortPopularity, SortName:
		return SortKey(s)
	default:
		return SortRecency
	}
}
