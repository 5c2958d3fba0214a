package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ruledoc/pkg/config"
	"github.com/yaklabco/ruledoc/pkg/runner"
	"github.com/yaklabco/ruledoc/pkg/validate"
)

const scenarioManifest = `name: test
rules:
  no-foo:
    description: Disallow foo
    fixable: true
  no-bar:
    deprecated: true
configs:
  recommended:
    rules:
      test/no-foo: error
`

const scenarioReadme = `# Test plugin

Intro prose.

## Rules

<!-- begin auto-generated rules list -->
<!-- end auto-generated rules list -->

Footer prose.
`

// writeProject lays out a plugin project in a temp dir.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for path, content := range files {
		abs := filepath.Join(dir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	return dir
}

func scenarioProject(t *testing.T) string {
	t.Helper()

	return writeProject(t, map[string]string{
		"rules.yml":            scenarioManifest,
		"README.md":            scenarioReadme,
		"docs/rules/no-foo.md": "# placeholder\n\nBody foo.\n",
		"docs/rules/no-bar.md": "# placeholder\n\nBody bar.\n",
	})
}

func readDoc(t *testing.T, dir, rel string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(content)
}

func TestRunWriteMode(t *testing.T) {
	t.Parallel()

	dir := scenarioProject(t)
	cfg := config.NewConfig()
	r := runner.New(runner.Options{ProjectDir: dir, Config: cfg})

	result, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "test", result.PluginName)
	assert.False(t, result.CheckMode)
	assert.Equal(t, 3, result.Stats.DocsProcessed)
	assert.Equal(t, 3, result.Stats.DocsChanged)
	assert.Equal(t, 3, result.Stats.DocsWritten)
	assert.False(t, result.Failed())
	assert.Empty(t, result.Violations)

	readme := readDoc(t, dir, "README.md")

	// Table between the markers: single config renders under its own
	// emoji, fixable and deprecated columns present, suppressed kinds
	// absent, deprecated rule last.
	assert.Contains(t, readme, "[no-foo](docs/rules/no-foo.md)")
	assert.Contains(t, readme, "✅")
	assert.NotContains(t, readme, "💼")
	assert.Contains(t, readme, "🔧")
	assert.Contains(t, readme, "❌")
	assert.NotContains(t, readme, "💡")
	assert.Less(t, strings.Index(readme, "[no-foo]"), strings.Index(readme, "[no-bar]"))

	// Caller prose survives on both sides of the region.
	assert.True(t, strings.HasPrefix(readme, "# Test plugin\n"))
	assert.Contains(t, readme, "Footer prose.")

	// Rule doc headers: generated title up top, marker, body untouched.
	fooDoc := readDoc(t, dir, "docs/rules/no-foo.md")
	assert.True(t, strings.HasPrefix(fooDoc, "# Disallow foo (`test/no-foo`)\n"))
	assert.Contains(t, fooDoc, "<!-- end auto-generated rule header -->")
	assert.Contains(t, fooDoc, "🔧 This rule is automatically fixable")
	assert.Contains(t, fooDoc, "Body foo.")

	barDoc := readDoc(t, dir, "docs/rules/no-bar.md")
	assert.Contains(t, barDoc, "❌ This rule is deprecated.")
}

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := scenarioProject(t)
	cfg := config.NewConfig()
	r := runner.New(runner.Options{ProjectDir: dir, Config: cfg})

	_, err := r.Run(context.Background())
	require.NoError(t, err)

	before := map[string]string{
		"README.md":            readDoc(t, dir, "README.md"),
		"docs/rules/no-foo.md": readDoc(t, dir, "docs/rules/no-foo.md"),
		"docs/rules/no-bar.md": readDoc(t, dir, "docs/rules/no-bar.md"),
	}

	second, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, second.Stats.DocsChanged)
	assert.Equal(t, 0, second.Stats.DocsWritten)

	for path, content := range before {
		assert.Equal(t, content, readDoc(t, dir, path), "second pass must not alter %s", path)
	}
}

func TestRunCheckMode(t *testing.T) {
	t.Parallel()

	dir := scenarioProject(t)
	cfg := config.NewConfig()
	cfg.Check = true
	r := runner.New(runner.Options{ProjectDir: dir, Config: cfg})

	result, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.HasDrift())
	assert.True(t, result.Failed())
	assert.Equal(t, 3, result.Stats.DocsChanged)
	assert.Equal(t, 0, result.Stats.DocsWritten)

	var sawDiff bool
	for _, doc := range result.Docs {
		if doc.Changed && doc.Diff != nil {
			sawDiff = true
		}
	}
	assert.True(t, sawDiff, "changed docs must carry diffs in check mode")

	// Nothing on disk moved.
	assert.Equal(t, scenarioReadme, readDoc(t, dir, "README.md"))
	assert.Equal(t, "# placeholder\n\nBody foo.\n", readDoc(t, dir, "docs/rules/no-foo.md"))
}

func TestRunCheckAfterWriteIsClean(t *testing.T) {
	t.Parallel()

	dir := scenarioProject(t)

	writeCfg := config.NewConfig()
	_, err := runner.New(runner.Options{ProjectDir: dir, Config: writeCfg}).Run(context.Background())
	require.NoError(t, err)

	checkCfg := config.NewConfig()
	checkCfg.Check = true
	result, err := runner.New(runner.Options{ProjectDir: dir, Config: checkCfg}).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, result.HasDrift())
	assert.False(t, result.Failed())
	assert.Equal(t, 0, result.Stats.DocsChanged)
}

func TestRunMissingRuleDoc(t *testing.T) {
	t.Parallel()

	dir := writeProject(t, map[string]string{
		"rules.yml": scenarioManifest,
		"README.md": scenarioReadme,
	})

	r := runner.New(runner.Options{ProjectDir: dir, Config: config.NewConfig()})
	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, runner.ErrDocMissing)
	assert.Contains(t, err.Error(), "no-bar")
}

func TestRunMissingRootDoc(t *testing.T) {
	t.Parallel()

	dir := writeProject(t, map[string]string{
		"rules.yml":            scenarioManifest,
		"docs/rules/no-foo.md": "x\n",
		"docs/rules/no-bar.md": "x\n",
	})

	r := runner.New(runner.Options{ProjectDir: dir, Config: config.NewConfig()})
	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, runner.ErrDocMissing)
}

func TestRunInitRuleDocs(t *testing.T) {
	t.Parallel()

	dir := writeProject(t, map[string]string{
		"rules.yml": scenarioManifest,
		"README.md": scenarioReadme,
	})

	cfg := config.NewConfig()
	cfg.InitRuleDocs = true
	r := runner.New(runner.Options{ProjectDir: dir, Config: cfg})

	result, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Stats.DocsStubbed)

	stub := readDoc(t, dir, "docs/rules/no-foo.md")
	assert.True(t, strings.HasPrefix(stub, "# Disallow foo (`test/no-foo`)\n"))
	assert.Contains(t, stub, "<!-- end auto-generated rule header -->")
	assert.Contains(t, stub, "TODO: document this rule.")

	// Stubs settle immediately: the next pass changes nothing.
	second, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Stats.DocsChanged)
	assert.Equal(t, 0, second.Stats.DocsStubbed)
}

func TestRunSectionValidation(t *testing.T) {
	t.Parallel()

	dir := scenarioProject(t)
	cfg := config.NewConfig()
	cfg.SectionInclude = []string{"Examples"}
	r := runner.New(runner.Options{ProjectDir: dir, Config: cfg})

	result, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.HasViolations())
	assert.True(t, result.Failed())
	require.Len(t, result.Violations, 2)
	for _, v := range result.Violations {
		assert.Equal(t, validate.KindMissingSection, v.Kind)
	}
}

func TestRunOrphanDetection(t *testing.T) {
	t.Parallel()

	dir := scenarioProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "rules", "no-gone.md"), []byte("x\n"), 0o644))

	r := runner.New(runner.Options{ProjectDir: dir, Config: config.NewConfig()})
	result, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Violations, 1)
	assert.Equal(t, validate.KindOrphanDoc, result.Violations[0].Kind)
	assert.Equal(t, "docs/rules/no-gone.md", result.Violations[0].Path)
}

func TestRunIgnoreConfig(t *testing.T) {
	t.Parallel()

	dir := scenarioProject(t)
	cfg := config.NewConfig()
	cfg.IgnoreConfigs = []string{"recommended"}
	r := runner.New(runner.Options{ProjectDir: dir, Config: cfg})

	_, err := r.Run(context.Background())
	require.NoError(t, err)

	readme := readDoc(t, dir, "README.md")
	assert.NotContains(t, readme, "✅")
	assert.NotContains(t, readme, "recommended")

	fooDoc := readDoc(t, dir, "docs/rules/no-foo.md")
	assert.NotContains(t, fooDoc, "💼")
}

func TestRunIgnoreDeprecated(t *testing.T) {
	t.Parallel()

	dir := scenarioProject(t)
	cfg := config.NewConfig()
	cfg.IgnoreDeprecated = true
	r := runner.New(runner.Options{ProjectDir: dir, Config: cfg})

	result, err := r.Run(context.Background())
	require.NoError(t, err)

	readme := readDoc(t, dir, "README.md")
	assert.NotContains(t, readme, "[no-bar]")
	assert.NotContains(t, readme, "❌")

	// The deprecated rule is still declared, so its doc is not an orphan.
	assert.Empty(t, result.Violations)
}

func TestRunWarnsOnUnknownRuleReference(t *testing.T) {
	t.Parallel()

	manifest := `name: test
rules:
  no-foo: null
configs:
  recommended:
    rules:
      test/no-nope: error
`
	dir := writeProject(t, map[string]string{
		"rules.yml":            manifest,
		"README.md":            scenarioReadme,
		"docs/rules/no-foo.md": "# x\n",
	})

	r := runner.New(runner.Options{ProjectDir: dir, Config: config.NewConfig()})
	result, err := r.Run(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "no-nope")
}

func TestRunSynthesizesMarkersUnderRulesHeading(t *testing.T) {
	t.Parallel()

	readme := "# Test plugin\n\n## Rules\n\nProse after heading.\n"
	dir := writeProject(t, map[string]string{
		"rules.yml":            scenarioManifest,
		"README.md":            readme,
		"docs/rules/no-foo.md": "# x\n",
		"docs/rules/no-bar.md": "# x\n",
	})

	r := runner.New(runner.Options{ProjectDir: dir, Config: config.NewConfig()})
	_, err := r.Run(context.Background())
	require.NoError(t, err)

	got := readDoc(t, dir, "README.md")
	assert.Contains(t, got, "<!-- begin auto-generated rules list -->")
	assert.Contains(t, got, "<!-- end auto-generated rules list -->")
	assert.Contains(t, got, "[no-foo](docs/rules/no-foo.md)")
	assert.Contains(t, got, "Prose after heading.")

	// Settles after synthesis.
	second, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Stats.DocsChanged)
}

func TestList(t *testing.T) {
	t.Parallel()

	dir := scenarioProject(t)
	r := runner.New(runner.Options{ProjectDir: dir, Config: config.NewConfig()})

	listing, err := r.List()
	require.NoError(t, err)

	assert.Equal(t, "test", listing.PluginName)
	require.Len(t, listing.Entries, 2)
	assert.Equal(t, "no-bar", listing.Entries[0].Rule.Name)
	assert.Equal(t, "no-foo", listing.Entries[1].Rule.Name)
	require.Len(t, listing.Entries[1].Configs, 1)
	assert.Equal(t, "recommended", listing.Entries[1].Configs[0].Name)
	assert.Equal(t, "✅", listing.Entries[1].Configs[0].Emoji)

	// No documents are read or written.
	assert.Equal(t, scenarioReadme, readDoc(t, dir, "README.md"))
}

func TestRunSkipsListWithoutMarkersOrHeading(t *testing.T) {
	t.Parallel()

	readme := "# Test plugin\n\nNo rules section here.\n"
	dir := writeProject(t, map[string]string{
		"rules.yml":            scenarioManifest,
		"README.md":            readme,
		"docs/rules/no-foo.md": "# x\n",
		"docs/rules/no-bar.md": "# x\n",
	})

	r := runner.New(runner.Options{ProjectDir: dir, Config: config.NewConfig()})
	result, err := r.Run(context.Background())
	require.NoError(t, err)

	// The skip is silent: no warning, no failure, document untouched.
	assert.Equal(t, readme, readDoc(t, dir, "README.md"))
	assert.Empty(t, result.Warnings)
	assert.False(t, result.Failed())
}
