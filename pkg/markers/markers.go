// Package markers implements the idempotent marker-delimited merge: locating
// the generated region inside a document and replacing only the bytes between
// the marker comments, leaving everything outside byte-identical. The splice
// is a pure function of the document bytes; no filesystem concern leaks in.
package markers

import (
	"bytes"
	"errors"

	"github.com/yaklabco/ruledoc/pkg/mdscan"
)

const (
	// BeginRuleList opens the generated rules-table region in the root document.
	BeginRuleList = "<!-- begin auto-generated rules list -->"

	// EndRuleList closes the generated rules-table region.
	EndRuleList = "<!-- end auto-generated rules list -->"

	// EndRuleHeader terminates the generated header region of a rule doc.
	// The region implicitly begins at the top of the file.
	EndRuleHeader = "<!-- end auto-generated rule header -->"

	// RulesSectionHeading is the heading under which table markers are
	// synthesized for a root document that has none yet.
	RulesSectionHeading = "Rules"
)

var (
	// ErrUnclosedRegion indicates a begin marker with no end marker after it.
	ErrUnclosedRegion = errors.New("begin marker without matching end marker")

	// ErrUnopenedRegion indicates an end marker with no begin marker before it.
	ErrUnopenedRegion = errors.New("end marker without preceding begin marker")
)

// MergeHeader replaces everything from the top of doc through the header end
// marker with the rendered header block. The block must already terminate
// with the end marker and a newline. A document without the marker gains the
// block at the top, separated from the existing content by a blank line.
// Content after the marker is preserved byte-for-byte.
func MergeHeader(doc []byte, header string) []byte {
	idx := bytes.Index(doc, []byte(EndRuleHeader))
	if idx < 0 {
		out := make([]byte, 0, len(header)+1+len(doc))
		out = append(out, header...)
		out = append(out, '\n')
		return append(out, doc...)
	}

	rest := doc[lineEndAfter(doc, idx+len(EndRuleHeader)):]
	out := make([]byte, 0, len(header)+len(rest))
	out = append(out, header...)
	return append(out, rest...)
}

// MergeRuleList splices the rendered table between the rules-list markers.
// The returned bool reports whether the document has (or just gained) a
// generated region. Behavior by document state:
//
//   - marker pair present: the bytes between the markers are replaced;
//     everything before the begin marker and after the end marker is
//     preserved exactly.
//   - no markers, a "Rules" heading present: the marker pair and content are
//     inserted directly under the heading.
//   - no markers, no "Rules" heading: the document is returned unchanged
//     (this document intentionally has no table).
//
// Empty content is never written as an empty table: with zero rows the
// document is returned unchanged regardless of marker state. A lone or
// misordered marker is an error.
func MergeRuleList(doc []byte, table string) ([]byte, bool, error) {
	begin := bytes.Index(doc, []byte(BeginRuleList))
	endSearch := 0
	if begin >= 0 {
		endSearch = begin + len(BeginRuleList)
	}
	end := bytes.Index(doc[endSearch:], []byte(EndRuleList))
	if end >= 0 {
		end += endSearch
	}

	switch {
	case begin < 0 && end >= 0:
		return nil, false, ErrUnopenedRegion
	case begin >= 0 && end < 0:
		return nil, false, ErrUnclosedRegion
	case begin < 0 && end < 0:
		if table == "" {
			return doc, false, nil
		}
		return insertRuleList(doc, table)
	}

	if table == "" {
		return doc, true, nil
	}

	regionStart := begin + len(BeginRuleList)
	out := make([]byte, 0, regionStart+len(table)+4+len(doc)-end)
	out = append(out, doc[:regionStart]...)
	out = append(out, "\n\n"...)
	out = append(out, table...)
	out = append(out, "\n\n"...)
	out = append(out, doc[end:]...)
	return out, true, nil
}

// insertRuleList synthesizes the marker pair under the "Rules" heading.
func insertRuleList(doc []byte, table string) ([]byte, bool, error) {
	h, ok := mdscan.FindHeading(doc, RulesSectionHeading)
	if !ok || h.LineStart < 0 {
		return doc, false, nil
	}

	var region bytes.Buffer
	region.WriteByte('\n')
	region.WriteString(BeginRuleList)
	region.WriteString("\n\n")
	region.WriteString(table)
	region.WriteString("\n\n")
	region.WriteString(EndRuleList)
	region.WriteByte('\n')

	out := make([]byte, 0, len(doc)+region.Len())
	out = append(out, doc[:h.LineEnd]...)
	out = append(out, region.Bytes()...)
	out = append(out, doc[h.LineEnd:]...)
	return out, true, nil
}

// lineEndAfter returns the offset just past the newline following pos, or
// len(doc) when pos sits on the final unterminated line.
func lineEndAfter(doc []byte, pos int) int {
	if pos >= len(doc) {
		return len(doc)
	}
	i := bytes.IndexByte(doc[pos:], '\n')
	if i < 0 {
		return len(doc)
	}
	return pos + i + 1
}
