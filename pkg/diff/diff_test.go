package diff_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/ruledoc/pkg/diff"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for empty inputs", func(t *testing.T) {
		t.Parallel()

		if d := diff.Compute("README.md", nil, nil); d != nil {
			t.Error("expected nil for empty inputs")
		}
		if d := diff.Compute("README.md", []byte{}, []byte{}); d != nil {
			t.Error("expected nil for empty byte slices")
		}
	})

	t.Run("returns nil for identical content", func(t *testing.T) {
		t.Parallel()

		content := []byte("# Title\n\nbody\n")
		if d := diff.Compute("README.md", content, content); d != nil {
			t.Error("expected nil for identical content")
		}
	})

	t.Run("detects changed line", func(t *testing.T) {
		t.Parallel()

		original := []byte("# Title\n\nold row\n")
		rendered := []byte("# Title\n\nnew row\n")

		d := diff.Compute("README.md", original, rendered)
		if d == nil {
			t.Fatal("expected non-nil diff")
		}
		if !d.HasChanges() {
			t.Error("expected HasChanges() = true")
		}
		if len(d.Hunks) != 1 {
			t.Errorf("expected 1 hunk, got %d", len(d.Hunks))
		}
		if d.Additions != 1 || d.Deletions != 1 {
			t.Errorf("expected 1 addition and 1 deletion, got +%d -%d", d.Additions, d.Deletions)
		}

		out := d.String()
		if !strings.Contains(out, "-old row") {
			t.Errorf("expected -old row in:\n%s", out)
		}
		if !strings.Contains(out, "+new row") {
			t.Errorf("expected +new row in:\n%s", out)
		}
	})

	t.Run("detects added line", func(t *testing.T) {
		t.Parallel()

		original := []byte("one\ntwo\n")
		rendered := []byte("one\ntwo\nthree\n")

		d := diff.Compute("README.md", original, rendered)
		if d == nil {
			t.Fatal("expected non-nil diff")
		}
		if !strings.Contains(d.String(), "+three") {
			t.Errorf("expected +three in:\n%s", d.String())
		}
		if d.Additions != 1 || d.Deletions != 0 {
			t.Errorf("expected +1 -0, got +%d -%d", d.Additions, d.Deletions)
		}
	})

	t.Run("detects removed line", func(t *testing.T) {
		t.Parallel()

		original := []byte("one\ntwo\nthree\n")
		rendered := []byte("one\nthree\n")

		d := diff.Compute("README.md", original, rendered)
		if d == nil {
			t.Fatal("expected non-nil diff")
		}
		if !strings.Contains(d.String(), "-two") {
			t.Errorf("expected -two in:\n%s", d.String())
		}
	})

	t.Run("handles fresh document", func(t *testing.T) {
		t.Parallel()

		d := diff.Compute("docs/rules/no-foo.md", nil, []byte("# no-foo\n"))
		if d == nil {
			t.Fatal("expected non-nil diff")
		}
		if d.Additions != 1 || d.Deletions != 0 {
			t.Errorf("expected +1 -0, got +%d -%d", d.Additions, d.Deletions)
		}
	})

	t.Run("separates distant changes into hunks", func(t *testing.T) {
		t.Parallel()

		var orig, mod strings.Builder
		for i := 0; i < 30; i++ {
			line := "line\n"
			orig.WriteString(line)
			mod.WriteString(line)
		}
		original := "first\n" + orig.String() + "last\n"
		rendered := "FIRST\n" + mod.String() + "LAST\n"

		d := diff.Compute("README.md", []byte(original), []byte(rendered))
		if d == nil {
			t.Fatal("expected non-nil diff")
		}
		if len(d.Hunks) != 2 {
			t.Errorf("expected 2 hunks for distant changes, got %d", len(d.Hunks))
		}
	})

	t.Run("hunk numbering is one based", func(t *testing.T) {
		t.Parallel()

		original := []byte("a\nb\nc\n")
		rendered := []byte("a\nB\nc\n")

		d := diff.Compute("README.md", original, rendered)
		if d == nil {
			t.Fatal("expected non-nil diff")
		}
		hunk := d.Hunks[0]
		if hunk.OriginalStart != 1 || hunk.ModifiedStart != 1 {
			t.Errorf("expected both starts at 1, got %d and %d", hunk.OriginalStart, hunk.ModifiedStart)
		}
		if hunk.OriginalCount != 3 || hunk.ModifiedCount != 3 {
			t.Errorf("expected both counts 3, got %d and %d", hunk.OriginalCount, hunk.ModifiedCount)
		}
	})

	t.Run("header names the document", func(t *testing.T) {
		t.Parallel()

		d := diff.Compute("docs/rules/no-foo.md", []byte("x\n"), []byte("y\n"))
		if d == nil {
			t.Fatal("expected non-nil diff")
		}
		out := d.String()
		if !strings.Contains(out, "--- a/docs/rules/no-foo.md") {
			t.Errorf("expected original header in:\n%s", out)
		}
		if !strings.Contains(out, "+++ b/docs/rules/no-foo.md") {
			t.Errorf("expected rendered header in:\n%s", out)
		}
	})
}

func TestDiffNilReceiver(t *testing.T) {
	t.Parallel()

	var d *diff.Diff
	if d.HasChanges() {
		t.Error("nil diff must report no changes")
	}
	if d.String() != "" {
		t.Error("nil diff must render empty")
	}
}
