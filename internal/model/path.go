package model

import "strings"

// Delimiter separates segments in a path-like value.
const Delimiter = ":"

// Code is the additive classification of a single segment.
type Code int

const (
	CodeKeep      Code = 0 // Unique and, when checked, existing
	CodeDuplicate Code = 1 // Repeats an earlier segment
	CodeMissing   Code = 2 // Does not exist on the filesystem
)

// Has reports whether the given bit is set.
func (c Code) Has(bit Code) bool {
	return c&bit != 0
}

// Valid reports whether c is one of the four possible codes.
func (c Code) Valid() bool {
	return c >= 0 && c <= CodeDuplicate+CodeMissing
}

// PathEntry represents a single segment of the processed value.
type PathEntry struct {
	Index int    `json:"index"` // 0-based position in the original value
	Value string `json:"value"` // The segment text, unmodified
	Code  Code   `json:"code"`  // Classification code 0..3
}

// Kept reports whether the entry survives filtering.
func (e PathEntry) Kept() bool {
	return e.Code == CodeKeep
}

// Result holds every classified entry plus the filtered sequence.
type Result struct {
	Entries []PathEntry
	Kept    []string
}

// Value rebuilds the delimited string from the keepers.
func (r Result) Value() string {
	return strings.Join(r.Kept, Delimiter)
}

func (r Result) Original() int { return len(r.Entries) }
func (r Result) Final() int    { return len(r.Kept) }
func (r Result) Removed() int  { return len(r.Entries) - len(r.Kept) }
