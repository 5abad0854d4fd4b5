package domain

import "strings"

// LinkType is the custom link type embedded in org documents.
const LinkType = "litdb"

// LinkPrefix is the link type followed by the type/target delimiter.
const LinkPrefix = LinkType + ":"

// ListSeparator separates identifiers inside a link target.
const ListSeparator = ","

// LinkNode is a litdb link located by the document parser.
// TargetStart and TargetEnd bound the raw identifier-list text
// (the part after the colon) within the document.
type LinkNode struct {
	TargetStart int
	TargetEnd   int
	Target      string
}

// SplitTarget splits a raw link target into its ordered identifier
// list. Surrounding whitespace is trimmed and empty elements (from
// trailing or doubled commas) are dropped.
func SplitTarget(target string) []string {
	parts := strings.Split(target, ListSeparator)
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
