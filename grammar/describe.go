package grammar

import (
	"fmt"
	"io"

	"github.com/agnivade/levenshtein"
	"github.com/olekukonko/tablewriter"
)

// maxDistanceForHint is the edit distance below which an unknown name gets a hint.
const maxDistanceForHint = 3

// closestNames returns candidates nearest to name, empty if none is close enough.
func closestNames(name string, candidates []string) []string {
	minDistance := maxDistanceForHint
	var result []string
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		switch {
		case d < minDistance:
			result = []string{c}
			minDistance = d
		case d == minDistance:
			result = append(result, c)
		}
	}
	return result
}

func hint(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(", did you mean %q?", names[0])
	default:
		return fmt.Sprintf(", did you mean any of %q?", names)
	}
}

// Describe writes a table of rules with their kinds and pseudo-BNF, ordered by name.
func (g *Grammar) Describe(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rule", "Kind", "BNF"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, name := range g.Names() {
		r := g.rules[name]
		table.Append([]string{name, r.Kind().String(), r.BNF()})
	}
	table.Render()
}
