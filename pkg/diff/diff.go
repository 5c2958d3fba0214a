// Package diff computes line-based unified diffs between the rendered form
// of a document and its on-disk content. Check mode reports these instead
// of writing.
package diff

import (
	"fmt"
	"slices"
	"strings"
)

// Diff is the unified diff for one document.
type Diff struct {
	// Path is the document path shown in the diff header.
	Path string

	// Hunks are the change regions with surrounding context.
	Hunks []Hunk

	// Additions counts added lines across all hunks.
	Additions int

	// Deletions counts removed lines across all hunks.
	Deletions int
}

// Hunk is one contiguous change region.
type Hunk struct {
	// OriginalStart is the 1-based first line of the hunk on disk.
	OriginalStart int

	// OriginalCount is the number of on-disk lines covered.
	OriginalCount int

	// ModifiedStart is the 1-based first line in the rendered content.
	ModifiedStart int

	// ModifiedCount is the number of rendered lines covered.
	ModifiedCount int

	// Lines are the hunk's lines in order.
	Lines []Line
}

// Line is a single diff line without its +/-/space prefix.
type Line struct {
	Kind    LineKind
	Content string
}

// LineKind classifies a diff line.
type LineKind int

const (
	// LineContext is an unchanged line shown for context.
	LineContext LineKind = iota

	// LineAdd exists only in the rendered content.
	LineAdd

	// LineRemove exists only on disk.
	LineRemove
)

// contextLines is how many unchanged lines surround each change.
const contextLines = 3

// Compute diffs on-disk content against freshly rendered content. It
// returns nil when the two are line-identical.
func Compute(path string, original, rendered []byte) *Diff {
	if len(original) == 0 && len(rendered) == 0 {
		return nil
	}

	origLines := splitLines(original)
	newLines := splitLines(rendered)
	if slices.Equal(origLines, newLines) {
		return nil
	}

	hunks := computeHunks(origLines, newLines)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineAdd:
				d.Additions++
			case LineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case LineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case LineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// splitLines breaks content into lines, dropping the final empty element a
// trailing newline produces.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// op is one elementary diff step.
type op struct {
	kind    LineKind
	content string
}

// computeHunks derives context-grouped hunks from an LCS line alignment.
func computeHunks(orig, rendered []string) []Hunk {
	common := longestCommonSubsequence(orig, rendered)

	ops := buildOps(orig, rendered, common)
	if len(ops) == 0 {
		return nil
	}
	return groupIntoHunks(ops)
}

// buildOps walks both line sequences against their common subsequence,
// emitting context, remove, and add steps in order.
func buildOps(orig, rendered, common []string) []op {
	var ops []op
	oi, ri, ci := 0, 0, 0

	for oi < len(orig) || ri < len(rendered) {
		if ci < len(common) && oi < len(orig) && ri < len(rendered) &&
			orig[oi] == common[ci] && rendered[ri] == common[ci] {
			ops = append(ops, op{kind: LineContext, content: orig[oi]})
			oi++
			ri++
			ci++
			continue
		}

		for oi < len(orig) && (ci >= len(common) || orig[oi] != common[ci]) {
			ops = append(ops, op{kind: LineRemove, content: orig[oi]})
			oi++
		}

		for ri < len(rendered) && (ci >= len(common) || rendered[ri] != common[ci]) {
			ops = append(ops, op{kind: LineAdd, content: rendered[ri]})
			ri++
		}
	}

	return ops
}

// groupIntoHunks merges changes separated by at most two context windows
// into shared hunks.
func groupIntoHunks(ops []op) []Hunk {
	type span struct {
		start, end int
	}

	var spans []span
	inChange := false
	spanStart := 0

	for i, o := range ops {
		isChange := o.kind != LineContext
		if isChange && !inChange {
			spanStart = i
			inChange = true
		} else if !isChange && inChange {
			spans = append(spans, span{spanStart, i})
			inChange = false
		}
	}
	if inChange {
		spans = append(spans, span{spanStart, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(spans); {
		next := i + 1
		for next < len(spans) && spans[next].start-spans[next-1].end <= contextLines*2 {
			next++
		}

		hunk := buildHunk(ops, spans[i].start, spans[next-1].end)
		if len(hunk.Lines) > 0 {
			hunks = append(hunks, hunk)
		}
		i = next
	}

	return hunks
}

// buildHunk expands one change span with context and computes its line
// numbering.
func buildHunk(ops []op, changeStart, changeEnd int) Hunk {
	start := max(0, changeStart-contextLines)
	end := min(len(ops), changeEnd+contextLines)

	var hunk Hunk

	origStart, newStart := 1, 1
	for i := range start {
		if ops[i].kind != LineAdd {
			origStart++
		}
		if ops[i].kind != LineRemove {
			newStart++
		}
	}
	hunk.OriginalStart = origStart
	hunk.ModifiedStart = newStart

	for i := start; i < end; i++ {
		hunk.Lines = append(hunk.Lines, Line{Kind: ops[i].kind, Content: ops[i].content})

		switch ops[i].kind {
		case LineContext:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case LineRemove:
			hunk.OriginalCount++
		case LineAdd:
			hunk.ModifiedCount++
		}
	}

	return hunk
}

// longestCommonSubsequence computes the LCS of two line slices with the
// standard dynamic program.
func longestCommonSubsequence(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	length := dp[len(a)][len(b)]
	if length == 0 {
		return nil
	}

	common := make([]string, length)
	i, j, k := len(a), len(b), length-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			common[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}

	return common
}
