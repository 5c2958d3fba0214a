package mdscan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ruledoc/pkg/mdscan"
)

func TestHeadings(t *testing.T) {
	t.Parallel()

	t.Run("collects headings in document order", func(t *testing.T) {
		t.Parallel()
		doc := []byte("# Title\n\nprose\n\n## Rules\n\nmore prose\n\n### Options\n")

		headings := mdscan.Headings(doc)
		require.Len(t, headings, 3)

		assert.Equal(t, 1, headings[0].Level)
		assert.Equal(t, "Title", headings[0].Text)
		assert.Equal(t, 2, headings[1].Level)
		assert.Equal(t, "Rules", headings[1].Text)
		assert.Equal(t, 3, headings[2].Level)
		assert.Equal(t, "Options", headings[2].Text)
	})

	t.Run("strips inline formatting from text", func(t *testing.T) {
		t.Parallel()
		doc := []byte("## `Options`\n\n## *Examples* here\n")

		headings := mdscan.Headings(doc)
		require.Len(t, headings, 2)
		assert.Equal(t, "Options", headings[0].Text)
		assert.Equal(t, "Examples here", headings[1].Text)
	})

	t.Run("line range covers the heading line", func(t *testing.T) {
		t.Parallel()
		doc := []byte("prose\n\n## Rules\n\nafter\n")

		h, ok := mdscan.FindHeading(doc, "Rules")
		require.True(t, ok)
		assert.Equal(t, "## Rules\n", string(doc[h.LineStart:h.LineEnd]))
	})

	t.Run("setext heading includes its underline", func(t *testing.T) {
		t.Parallel()
		doc := []byte("Rules\n-----\n\nafter\n")

		h, ok := mdscan.FindHeading(doc, "Rules")
		require.True(t, ok)
		assert.Equal(t, 2, h.Level)
		assert.Equal(t, "Rules\n-----\n", string(doc[h.LineStart:h.LineEnd]))
	})

	t.Run("unterminated final line", func(t *testing.T) {
		t.Parallel()
		doc := []byte("## Rules")

		h, ok := mdscan.FindHeading(doc, "Rules")
		require.True(t, ok)
		assert.Equal(t, len(doc), h.LineEnd)
	})

	t.Run("no headings", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, mdscan.Headings([]byte("just prose\n")))
	})

	t.Run("headings inside code fences are ignored", func(t *testing.T) {
		t.Parallel()
		doc := []byte("```\n## not a heading\n```\n\n## Rules\n")

		headings := mdscan.Headings(doc)
		require.Len(t, headings, 1)
		assert.Equal(t, "Rules", headings[0].Text)
	})
}

func TestFindHeading(t *testing.T) {
	t.Parallel()

	doc := []byte("# Intro\n\n## Rules\n\n## rules\n")

	t.Run("match is case-sensitive", func(t *testing.T) {
		t.Parallel()
		h, ok := mdscan.FindHeading(doc, "Rules")
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(string(doc[h.LineStart:]), "## Rules"))

		lower, ok := mdscan.FindHeading(doc, "rules")
		require.True(t, ok)
		assert.Greater(t, lower.LineStart, h.LineStart)
	})

	t.Run("missing heading", func(t *testing.T) {
		t.Parallel()
		_, ok := mdscan.FindHeading(doc, "Examples")
		assert.False(t, ok)
	})
}
