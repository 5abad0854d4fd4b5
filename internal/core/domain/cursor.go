package domain

import "strings"

// CursorContext classifies where the cursor sits relative to litdb
// link annotations. The four contexts are mutually exclusive and
// checked in declaration order.
type CursorContext int

const (
	// CursorElsewhere means plain text: no annotation at or before point.
	CursorElsewhere CursorContext = iota

	// CursorInsideOccurrence means point is within an annotated occurrence.
	CursorInsideOccurrence

	// CursorJustAfterOccurrence means the character immediately before
	// point is annotated but point itself is not.
	CursorJustAfterOccurrence

	// CursorOnTypeMarker means point is on the link-type keyword of a
	// link that has no target yet (between the prefix and its colon).
	CursorOnTypeMarker
)

// String returns a human-readable context name.
func (c CursorContext) String() string {
	switch c {
	case CursorInsideOccurrence:
		return "inside-occurrence"
	case CursorJustAfterOccurrence:
		return "just-after-occurrence"
	case CursorOnTypeMarker:
		return "on-type-marker"
	default:
		return "elsewhere"
	}
}

// ClassifyCursor computes the insertion context for point. It is the
// single pure classification function the insertion engine dispatches
// on: inside an occurrence, exactly one past its end, on the link-type
// marker, or elsewhere, in that order.
func ClassifyCursor(b *Buffer, point int) CursorContext {
	if _, ok := b.OccurrenceAt(point); ok {
		return CursorInsideOccurrence
	}
	if _, ok := b.OccurrenceEndingAt(point); ok {
		return CursorJustAfterOccurrence
	}
	if onTypeMarker(b.Text, point) {
		return CursorOnTypeMarker
	}
	return CursorElsewhere
}

// onTypeMarker reports whether point sits on a literal link-type
// keyword that is immediately followed by the type/target delimiter.
func onTypeMarker(text string, point int) bool {
	lo := point - len(LinkType)
	if lo < 0 {
		lo = 0
	}
	for start := lo; start <= point && start+len(LinkPrefix) <= len(text); start++ {
		if !strings.HasPrefix(text[start:], LinkPrefix) {
			continue
		}
		if point < start || point > start+len(LinkType) {
			continue
		}
		// Reject matches inside a longer word, e.g. "mylitdb:".
		if start > 0 && isWordByte(text[start-1]) {
			continue
		}
		return true
	}
	return false
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
