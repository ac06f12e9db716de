package model

// Centralized icons for listings and the UI
// Using simple single-width characters for consistent terminal rendering
const (
	IconDuplicate = "≈" // Almost equal (duplicate)
	IconMissing   = "✗" // Thin X (missing)
	IconBoth      = "≠" // Duplicate and missing
	IconOK        = " " // Space (OK - no icon to reduce noise)
)

// Icon returns the status icon for a classification code.
func (c Code) Icon() string {
	switch {
	case c.Has(CodeDuplicate) && c.Has(CodeMissing):
		return IconBoth
	case c.Has(CodeDuplicate):
		return IconDuplicate
	case c.Has(CodeMissing):
		return IconMissing
	}
	return IconOK
}

// Describe returns the legend text for a classification code.
func (c Code) Describe() string {
	switch c {
	case 0:
		return "unique, exists (existence only checked with -u)"
	case 1:
		return "duplicate of an earlier entry"
	case 2:
		return "unique, does not exist"
	case 3:
		return "duplicate of an earlier entry, does not exist"
	}
	return "invalid"
}
