package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ruledoc/internal/configloader"
	"github.com/yaklabco/ruledoc/internal/logging"
	"github.com/yaklabco/ruledoc/pkg/config"
	"github.com/yaklabco/ruledoc/pkg/reporter"
	"github.com/yaklabco/ruledoc/pkg/runner"
)

type generateFlags struct {
	titleFormat string
	format      string
	configEmoji []string
}

func newGenerateCommand() *cobra.Command {
	var cfg config.Config
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate [project-dir]",
		Short: "Generate rule docs and the rules table",
		Long:  generateLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, &cfg, flags)
		},
	}

	addGenerateFlags(cmd, &cfg, flags)

	return cmd
}

const generateLongDescription = `Generate the title and notice block of every rule doc and the rules table
in the project's root document, from the plugin's rules manifest.

By default, operates on the current directory. Pass a project directory to
operate elsewhere. Configuration is read from .ruledoc.yml in the project
directory, RULEDOC_* environment variables, and flags, in rising precedence.

Examples:
  ruledoc generate                   # Update docs in the current directory
  ruledoc generate path/to/plugin    # Update docs in another project
  ruledoc generate --check           # Report drift without writing, for CI
  ruledoc generate --init-rule-docs  # Create stub docs for undocumented rules
  ruledoc generate --format json     # Machine-readable report`

func runGenerate(cmd *cobra.Command, args []string, cfg *config.Config, flags *generateFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values. Empty means the flag was not
	// given, which the config merge treats as no override.
	cfg.TitleFormat = config.TitleFormat(flags.titleFormat)
	cfg.Format = config.OutputFormat(flags.format)

	emojis, err := parseEmojiPairs(flags.configEmoji)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	cfg.ConfigEmojis = emojis

	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   projectDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	// The table format belongs to the rules subcommand.
	if finalCfg.Format == config.FormatTable {
		return fmt.Errorf("%w: generate reports as text or json, not table", ErrUsage)
	}

	logger.Debug("starting documentation run",
		logging.FieldProjectDir, projectDir,
		logging.FieldManifest, finalCfg.Manifest,
		logging.FieldCheck, finalCfg.Check,
	)

	docRunner := runner.New(runner.Options{
		ProjectDir: projectDir,
		Config:     finalCfg,
	})

	result, err := docRunner.Run(ctx)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      finalCfg.Format,
		Color:       colorMode,
		ShowSummary: true,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.Failed() {
		return reporter.ErrIssuesFound
	}

	return nil
}

// parseEmojiPairs converts repeated name=emoji flag values into a map. A
// name with an empty value clears a default mapping; a bare name without
// "=" is rejected.
func parseEmojiPairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	emojis := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, emoji, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid config-emoji %q: expected name=emoji", pair)
		}
		emojis[name] = emoji
	}

	return emojis, nil
}

func addGenerateFlags(cmd *cobra.Command, cfg *config.Config, flags *generateFlags) {
	cmd.Flags().BoolVar(&cfg.Check, "check", false, "report drift without writing, exit 1 if stale")
	cmd.Flags().BoolVar(&cfg.InitRuleDocs, "init-rule-docs", false, "create stub docs for rules that have none")
	cmd.Flags().StringVar(&cfg.Manifest, "manifest", "", "path to the plugin's rules manifest")
	cmd.Flags().StringVar(&cfg.PathRuleList, "path-rule-list", "", "root document holding the rules table")
	cmd.Flags().StringVar(&cfg.PathRuleDoc, "path-rule-doc", "",
		"rule doc path template with a {name} placeholder")
	cmd.Flags().StringVar(&flags.titleFormat, "rule-doc-title-format", "",
		"rule doc title format: desc, desc-parens-name, desc-parens-prefix-name, name, prefix-name")
	cmd.Flags().StringSliceVar(&cfg.Notices, "rule-doc-notices", nil,
		"badge kinds for rule doc headers: configs, fixable, suggestions, type-checking, deprecated, options")
	cmd.Flags().StringSliceVar(&cfg.Columns, "rule-list-columns", nil,
		"columns eligible for the rules table")
	cmd.Flags().StringSliceVar(&cfg.SectionInclude, "rule-doc-section-include", nil,
		"section headings every rule doc must contain")
	cmd.Flags().StringSliceVar(&cfg.SectionExclude, "rule-doc-section-exclude", nil,
		"section headings no rule doc may contain")
	cmd.Flags().StringArrayVar(&flags.configEmoji, "config-emoji", nil,
		"config badge emoji as name=emoji (repeatable; name= clears a default)")
	cmd.Flags().StringSliceVar(&cfg.IgnoreConfigs, "ignore-config", nil,
		"config names excluded from all output")
	cmd.Flags().BoolVar(&cfg.IgnoreDeprecated, "ignore-deprecated-rules", false,
		"drop deprecated rules from docs and table")
	cmd.Flags().StringVar(&cfg.SplitBy, "split-by", "",
		"partition the rules table by a rule attribute")
	cmd.Flags().StringSliceVar(&cfg.SortBy, "sort-by", nil,
		"order table rows by these columns before the name sort")
	cmd.Flags().StringVar(&cfg.URLConfigs, "url-configs", "",
		"link config names in the table legend to this URL")
	cmd.Flags().StringVar(&flags.format, "format", "", "report format: text, json")
}
