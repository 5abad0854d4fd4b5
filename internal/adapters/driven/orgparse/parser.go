package orgparse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

var (
	// [[litdb:TARGET]] or [[litdb:TARGET][description]].
	bracketLinkRe = regexp.MustCompile(`\[\[litdb:([^\[\]]+)\](?:\[[^\]]*\])?\]`)

	// Bare litdb:TARGET outside brackets. The target runs to the next
	// whitespace or bracket; trailing sentence punctuation is trimmed
	// afterwards.
	plainLinkRe = regexp.MustCompile(`litdb:[^\s\[\]]+`)

	beginBlockRe = regexp.MustCompile(`(?i)^\s*#\+begin_(src|example)\b`)
	endBlockRe   = regexp.MustCompile(`(?i)^\s*#\+end_(src|example)\b`)
)

// Parser finds litdb links in Org documents.
type Parser struct{}

// NewParser creates an Org link parser.
func NewParser() *Parser {
	return &Parser{}
}

// Links returns every litdb link target in content, in document
// order. The reported span covers the identifier list only, not the
// litdb: prefix or any bracket syntax around it.
func (p *Parser) Links(content []byte) ([]domain.LinkNode, error) {
	text := string(content)
	skip := blockRanges(text)

	var nodes []domain.LinkNode
	var claimed []span

	for _, m := range bracketLinkRe.FindAllStringSubmatchIndex(text, -1) {
		claimed = append(claimed, span{m[0], m[1]})
		if covered(skip, m[0]) {
			continue
		}
		nodes = append(nodes, domain.LinkNode{
			TargetStart: m[2],
			TargetEnd:   m[3],
			Target:      text[m[2]:m[3]],
		})
	}

	for _, m := range plainLinkRe.FindAllStringIndex(text, -1) {
		if covered(claimed, m[0]) || covered(skip, m[0]) {
			continue
		}
		// Reject matches inside a longer word, e.g. "mylitdb:".
		if m[0] > 0 && isWordByte(text[m[0]-1]) {
			continue
		}

		start := m[0] + len(domain.LinkPrefix)
		target := strings.TrimRight(text[start:m[1]], ".,;:!?)'\"")
		if target == "" {
			continue
		}
		nodes = append(nodes, domain.LinkNode{
			TargetStart: start,
			TargetEnd:   start + len(target),
			Target:      target,
		})
	}

	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].TargetStart < nodes[j].TargetStart
	})

	return nodes, nil
}

type span struct {
	start, end int
}

// blockRanges returns the byte ranges of src and example blocks,
// where link syntax is quoted text rather than a live link. An
// unterminated block runs to the end of the document.
func blockRanges(text string) []span {
	var ranges []span

	offset := 0
	blockStart := -1
	for _, line := range strings.SplitAfter(text, "\n") {
		switch {
		case blockStart < 0 && beginBlockRe.MatchString(line):
			blockStart = offset
		case blockStart >= 0 && endBlockRe.MatchString(line):
			ranges = append(ranges, span{blockStart, offset + len(line)})
			blockStart = -1
		}
		offset += len(line)
	}
	if blockStart >= 0 {
		ranges = append(ranges, span{blockStart, len(text)})
	}

	return ranges
}

func covered(ranges []span, pos int) bool {
	for _, r := range ranges {
		if pos >= r.start && pos < r.end {
			return true
		}
	}
	return false
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
