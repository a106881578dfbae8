package minutes

import (
	"fmt"
	"regexp"
)

// linkPattern matches an inline "[label](url)" link. The label runs to
// the first closing bracket (an opening bracket inside it is kept); the
// url ends at the first closing parenthesis.
var linkPattern = regexp.MustCompile(`\[([^\]]+?)\]\(([^)]+)\)`)

// LinkReference is one extracted link, numbered for the appendix.
type LinkReference struct {
	Index int
	Label string
	URL   string
}

// LinkTable accumulates links across a whole document. One table is
// threaded through every extraction call so the index counter is shared
// document-wide; re-running extraction on unchanged input assigns the
// same indices.
type LinkTable struct {
	Links []LinkReference
}

// Extract rewrites every "[label](url)" in text as "label [n]",
// assigning indices in left-to-right order starting after the table's
// current last index. The input is never mutated; the rewritten text is
// meant for rendering only.
func (t *LinkTable) Extract(text string) string {
	return linkPattern.ReplaceAllStringFunc(text, func(m string) string {
		groups := linkPattern.FindStringSubmatch(m)
		ref := LinkReference{
			Index: len(t.Links) + 1,
			Label: groups[1],
			URL:   groups[2],
		}
		t.Links = append(t.Links, ref)
		return fmt.Sprintf("%s [%d]", ref.Label, ref.Index)
	})
}
