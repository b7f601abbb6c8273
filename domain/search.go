package domain

import "time"

// SearchResult is one deep-search hit: a snippet of transcript text containing
// the query, with enough context to identify where it came from.
type SearchResult struct {
	SessionID string
	Project   string // project display name
	Role      Role
	Timestamp time.Time
	Snippet   string
}
