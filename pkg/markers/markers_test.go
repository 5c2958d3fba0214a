package markers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ruledoc/pkg/markers"
)

const sampleHeader = "# Disallow foo. (`myplugin/no-foo`)\n\n" +
	"🔧 This rule is automatically fixable.\n\n" +
	markers.EndRuleHeader + "\n"

func TestMergeHeader(t *testing.T) {
	t.Parallel()

	t.Run("replaces content above the marker", func(t *testing.T) {
		t.Parallel()
		doc := []byte("# Stale title\n\nold badge line\n\n" + markers.EndRuleHeader + "\n\n## Examples\n\nprose\n")

		got := markers.MergeHeader(doc, sampleHeader)
		assert.Equal(t, sampleHeader+"\n## Examples\n\nprose\n", string(got))
	})

	t.Run("prepends when marker is missing", func(t *testing.T) {
		t.Parallel()
		doc := []byte("## Examples\n\nprose\n")

		got := markers.MergeHeader(doc, sampleHeader)
		assert.Equal(t, sampleHeader+"\n## Examples\n\nprose\n", string(got))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		doc := []byte("anything at all\n")

		once := markers.MergeHeader(doc, sampleHeader)
		twice := markers.MergeHeader(once, sampleHeader)
		assert.Equal(t, string(once), string(twice))
	})

	t.Run("only the first marker delimits the region", func(t *testing.T) {
		t.Parallel()
		doc := []byte("old\n" + markers.EndRuleHeader + "\nbody with literal " + markers.EndRuleHeader + " inside\n")

		got := markers.MergeHeader(doc, sampleHeader)
		assert.Equal(t, sampleHeader+"body with literal "+markers.EndRuleHeader+" inside\n", string(got))
	})
}

func TestMergeRuleList(t *testing.T) {
	t.Parallel()

	table := "| Name |\n| :-- |\n| [no-foo](docs/rules/no-foo.md) |"

	t.Run("replaces region between markers", func(t *testing.T) {
		t.Parallel()
		doc := []byte("intro prose\n\n" + markers.BeginRuleList + "\n\nstale table\n\n" + markers.EndRuleList + "\n\ntrailing prose\n")

		got, ok, err := markers.MergeRuleList(doc, table)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t,
			"intro prose\n\n"+markers.BeginRuleList+"\n\n"+table+"\n\n"+markers.EndRuleList+"\n\ntrailing prose\n",
			string(got))
	})

	t.Run("region isolation with arbitrary surroundings", func(t *testing.T) {
		t.Parallel()
		prefix := "\x00weird bytes | pipes | and --- dashes\n" + markers.BeginRuleList
		suffix := markers.EndRuleList + "no newline at all"
		doc := []byte(prefix + "anything" + suffix)

		got, ok, err := markers.MergeRuleList(doc, table)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, prefix+"\n\n"+table+"\n\n"+suffix, string(got))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		doc := []byte("pre\n" + markers.BeginRuleList + "\nold\n" + markers.EndRuleList + "\npost\n")

		once, _, err := markers.MergeRuleList(doc, table)
		require.NoError(t, err)
		twice, _, err := markers.MergeRuleList(once, table)
		require.NoError(t, err)
		assert.Equal(t, string(once), string(twice))
	})

	t.Run("no markers and no Rules heading leaves doc unchanged", func(t *testing.T) {
		t.Parallel()
		doc := []byte("# Plugin\n\njust prose\n")

		got, ok, err := markers.MergeRuleList(doc, table)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, string(doc), string(got))
	})

	t.Run("markers synthesized under Rules heading", func(t *testing.T) {
		t.Parallel()
		doc := []byte("# Plugin\n\n## Rules\n\nhand-written intro\n")

		got, ok, err := markers.MergeRuleList(doc, table)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t,
			"# Plugin\n\n## Rules\n\n"+markers.BeginRuleList+"\n\n"+table+"\n\n"+markers.EndRuleList+"\n\nhand-written intro\n",
			string(got))

		// A second pass finds the synthesized markers and is a no-op.
		twice, ok, err := markers.MergeRuleList(got, table)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, string(got), string(twice))
	})

	t.Run("empty content never writes a table", func(t *testing.T) {
		t.Parallel()

		withMarkers := []byte("pre\n" + markers.BeginRuleList + "\n\nstale\n\n" + markers.EndRuleList + "\npost\n")
		got, ok, err := markers.MergeRuleList(withMarkers, "")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, string(withMarkers), string(got))

		withHeading := []byte("## Rules\n\nprose\n")
		got, ok, err = markers.MergeRuleList(withHeading, "")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, string(withHeading), string(got))
	})

	t.Run("lone begin marker is an error", func(t *testing.T) {
		t.Parallel()
		doc := []byte("pre\n" + markers.BeginRuleList + "\npost\n")

		_, _, err := markers.MergeRuleList(doc, table)
		assert.ErrorIs(t, err, markers.ErrUnclosedRegion)
	})

	t.Run("lone end marker is an error", func(t *testing.T) {
		t.Parallel()
		doc := []byte("pre\n" + markers.EndRuleList + "\npost\n")

		_, _, err := markers.MergeRuleList(doc, table)
		assert.ErrorIs(t, err, markers.ErrUnopenedRegion)
	})

	t.Run("end marker before begin marker is an error", func(t *testing.T) {
		t.Parallel()
		doc := []byte(markers.EndRuleList + "\n" + markers.BeginRuleList + "\n")

		_, _, err := markers.MergeRuleList(doc, table)
		assert.ErrorIs(t, err, markers.ErrUnclosedRegion)
	})
}
