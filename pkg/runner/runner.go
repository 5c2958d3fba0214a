package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/ruledoc/internal/logging"
	"github.com/yaklabco/ruledoc/pkg/config"
	"github.com/yaklabco/ruledoc/pkg/diff"
	"github.com/yaklabco/ruledoc/pkg/fsutil"
	"github.com/yaklabco/ruledoc/pkg/markers"
	"github.com/yaklabco/ruledoc/pkg/notices"
	"github.com/yaklabco/ruledoc/pkg/plugin"
	"github.com/yaklabco/ruledoc/pkg/render"
	"github.com/yaklabco/ruledoc/pkg/rules"
	"github.com/yaklabco/ruledoc/pkg/validate"
)

// ErrDocMissing indicates a required document does not exist. Missing docs
// abort the run; only drift and validation findings accumulate.
var ErrDocMissing = errors.New("document missing")

// Runner executes one documentation pass over a plugin project.
type Runner struct {
	projectDir string
	cfg        *config.Config
}

// New creates a Runner from the given options.
func New(opts Options) *Runner {
	return &Runner{
		projectDir: opts.effectiveProjectDir(),
		cfg:        opts.Config,
	}
}

// Listing is a project's displayed rule set, resolved the same way a
// documentation pass resolves it.
type Listing struct {
	PluginName string
	Entries    []render.Entry
	Warnings   []string
}

// List resolves the manifest into the displayed rule set without touching
// any document.
func (r *Runner) List() (*Listing, error) {
	manifest, entries, warnings, err := r.resolve()
	if err != nil {
		return nil, err
	}
	return &Listing{
		PluginName: manifest.Name,
		Entries:    entries,
		Warnings:   warnings,
	}, nil
}

// Run loads the manifest and processes every document: each rule doc's
// header region, the root document's rules table, section validation, and
// the orphan-doc scan. Rule docs are processed in rule-name order so the
// result is deterministic.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	manifest, entries, warnings, err := r.resolve()
	if err != nil {
		return nil, err
	}

	// Bare entries are a known metadata-loss case, not an error.
	logger := logging.FromContext(ctx)
	for _, name := range manifest.RuleNames() {
		if !manifest.Rules[name].HasMeta {
			logger.Debug("rule declares no metadata", logging.FieldRule, name)
		}
	}

	result := &Result{
		PluginName: manifest.Name,
		CheckMode:  r.cfg.Check,
		Warnings:   warnings,
	}

	opts := r.renderOptions(manifest.Name)
	secOpts := validate.Options{
		RequiredSections:  r.cfg.SectionInclude,
		ForbiddenSections: r.cfg.SectionExclude,
	}

	for _, e := range entries {
		if err := r.processRuleDoc(ctx, e, opts, secOpts, result); err != nil {
			return nil, err
		}
	}

	if err := r.processRulesList(ctx, entries, opts, result); err != nil {
		return nil, err
	}

	r.collectOrphans(manifest, result)

	result.Stats.ViolationsTotal = len(result.Violations)
	return result, nil
}

// resolve loads the manifest and pairs each displayed rule with its config
// badges, membership sorted case-insensitively by config name.
func (r *Runner) resolve() (*plugin.Manifest, []render.Entry, []string, error) {
	manifest, err := plugin.Load(filepath.Join(r.projectDir, r.cfg.Manifest))
	if err != nil {
		return nil, nil, nil, err
	}

	details := rules.Normalize(manifest, r.cfg.IgnoreDeprecated)
	index, warnings := rules.ResolveConfigs(manifest, r.cfg.IgnoreConfigs)

	entries := make([]render.Entry, len(details))
	for i, d := range details {
		names := index.ConfigsFor(d.Name)
		entries[i] = render.Entry{Rule: d, Configs: notices.BadgesFor(names, r.cfg.ConfigEmojis)}
	}
	return manifest, entries, warnings, nil
}

// renderOptions maps the run configuration onto the renderer.
func (r *Runner) renderOptions(pluginName string) render.Options {
	return render.Options{
		PluginName:   pluginName,
		PathRuleList: r.cfg.PathRuleList,
		PathRuleDoc:  r.cfg.PathRuleDoc,
		TitleFormat:  r.cfg.TitleFormat,
		Notices:      toKinds(r.cfg.Notices),
		Columns:      r.cfg.Columns,
		SortBy:       toKinds(r.cfg.SortBy),
		SplitBy:      r.cfg.SplitBy,
		URLConfigs:   r.cfg.URLConfigs,
	}
}

// toKinds converts column identifiers to badge kinds, dropping identifiers
// that name no badge ("name", "description"). Unknown identifiers were
// already rejected at config validation.
func toKinds(ids []string) []notices.Kind {
	kinds := make([]notices.Kind, 0, len(ids))
	for _, id := range ids {
		if k := notices.Kind(id); k.IsValid() {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// processRuleDoc regenerates one rule doc's header region and validates
// its sections. A missing doc aborts the run unless stub creation is on.
func (r *Runner) processRuleDoc(ctx context.Context, e render.Entry, opts render.Options, secOpts validate.Options, result *Result) error {
	relPath := config.RuleDocPath(r.cfg.PathRuleDoc, e.Rule.Name)
	absPath := filepath.Join(r.projectDir, filepath.FromSlash(relPath))

	doc, err := fsutil.ReadFile(ctx, absPath)
	if err != nil {
		if errors.Is(err, fsutil.ErrNotFound) {
			if r.cfg.InitRuleDocs && !r.cfg.Check {
				return r.createStub(ctx, e, opts, relPath, absPath, result)
			}
			return fmt.Errorf("%w: rule doc %s for rule %q", ErrDocMissing, relPath, e.Rule.Name)
		}
		return err
	}

	merged := markers.MergeHeader(doc, render.Header(e, opts))

	outcome := DocOutcome{Path: relPath, Kind: DocRuleHeader, Rule: e.Rule.Name}
	if r.cfg.Check {
		outcome.Changed = !bytes.Equal(merged, doc)
		if outcome.Changed {
			outcome.Diff = diff.Compute(relPath, doc, merged)
		}
	} else {
		wrote, err := fsutil.WriteAtomicIfChanged(ctx, absPath, merged, 0)
		if err != nil {
			return err
		}
		outcome.Changed = wrote
		outcome.Written = wrote
	}
	result.accumulate(outcome)

	// Sections are caller-owned prose; validate what is on disk, not what
	// was just rendered.
	result.Violations = append(result.Violations, validate.CheckDoc(relPath, doc, e.Rule, secOpts)...)
	return nil
}

// createStub writes a fresh rule doc containing the generated header and a
// placeholder body. Stubs skip section validation on the run that creates
// them.
func (r *Runner) createStub(ctx context.Context, e render.Entry, opts render.Options, relPath, absPath string, result *Result) error {
	content := render.Header(e, opts) + "\nTODO: document this rule.\n"

	if err := fsutil.EnsureDir(filepath.Dir(absPath)); err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(ctx, absPath, []byte(content), 0); err != nil {
		return err
	}

	result.accumulate(DocOutcome{
		Path:    relPath,
		Kind:    DocStub,
		Rule:    e.Rule.Name,
		Changed: true,
		Written: true,
	})
	return nil
}

// processRulesList regenerates the marker-delimited table region of the
// root document.
func (r *Runner) processRulesList(ctx context.Context, entries []render.Entry, opts render.Options, result *Result) error {
	relPath := r.cfg.PathRuleList
	absPath := filepath.Join(r.projectDir, filepath.FromSlash(relPath))

	doc, err := fsutil.ReadFile(ctx, absPath)
	if err != nil {
		if errors.Is(err, fsutil.ErrNotFound) {
			return fmt.Errorf("%w: rules list doc %s", ErrDocMissing, relPath)
		}
		return err
	}

	table := render.RulesTable(entries, opts)
	merged, ok, err := markers.MergeRuleList(doc, table)
	if err != nil {
		return fmt.Errorf("%s: %w", relPath, err)
	}
	if !ok {
		// This document intentionally has no table; skip it quietly.
		logging.FromContext(ctx).Debug("no rules list markers or heading; list skipped",
			logging.FieldPath, relPath)
	}

	outcome := DocOutcome{Path: relPath, Kind: DocRulesList}
	if r.cfg.Check {
		outcome.Changed = !bytes.Equal(merged, doc)
		if outcome.Changed {
			outcome.Diff = diff.Compute(relPath, doc, merged)
		}
	} else {
		wrote, err := fsutil.WriteAtomicIfChanged(ctx, absPath, merged, 0)
		if err != nil {
			return err
		}
		outcome.Changed = wrote
		outcome.Written = wrote
	}
	result.accumulate(outcome)
	return nil
}

// collectOrphans flags rule docs on disk that no declared rule owns. The
// full declared rule set is used, so ignored deprecated rules do not make
// their docs look orphaned.
func (r *Runner) collectOrphans(m *plugin.Manifest, result *Result) {
	docs, err := DiscoverRuleDocs(r.projectDir, r.cfg.PathRuleDoc)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		return
	}
	result.Violations = append(result.Violations, validate.Orphans(docs, m.RuleNames(), r.cfg.PathRuleDoc)...)
}
