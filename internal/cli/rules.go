package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ruledoc/internal/configloader"
	"github.com/yaklabco/ruledoc/internal/logging"
	"github.com/yaklabco/ruledoc/internal/ui/pretty"
	"github.com/yaklabco/ruledoc/pkg/runner"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// ruleInfo represents one rule in JSON output.
type ruleInfo struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	Type                 string   `json:"type,omitempty"`
	Fixable              bool     `json:"fixable"`
	HasSuggestions       bool     `json:"hasSuggestions"`
	RequiresTypeChecking bool     `json:"requiresTypeChecking"`
	Deprecated           bool     `json:"deprecated"`
	ReplacedBy           []string `json:"replacedBy,omitempty"`
	Options              []string `json:"options,omitempty"`
	Configs              []string `json:"configs,omitempty"`
}

// ruleListing is the envelope for JSON output.
type ruleListing struct {
	Plugin string     `json:"plugin"`
	Rules  []ruleInfo `json:"rules"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules [project-dir]",
		Short: "List the plugin's rules",
		Long: `List the rules declared in the plugin's manifest, after the same
normalization and filtering a documentation run applies: ignored configs
removed, deprecated rules dropped when configured, rules sorted by name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "table",
		"output format: table, json")

	return cmd
}

func runRules(cmd *cobra.Command, args []string, flags *rulesFlags) error {
	logger := logging.Default()

	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   projectDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	docRunner := runner.New(runner.Options{
		ProjectDir: projectDir,
		Config:     loadResult.Config,
	})

	listing, err := docRunner.List()
	if err != nil {
		return err
	}
	for _, warning := range listing.Warnings {
		logger.Warn(warning)
	}

	out := cmd.OutOrStdout()

	switch flags.format {
	case formatJSON:
		return writeRulesJSON(out, listing)
	case "table":
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			colorMode = "auto"
		}

		colorEnabled := pretty.IsColorEnabled(colorMode, out)
		formatter := pretty.NewTableFormatter(pretty.NewStyles(colorEnabled), colorEnabled, 0)

		_, err = fmt.Fprint(out, formatter.FormatRules(listing.Entries))
		return err
	default:
		return fmt.Errorf("%w: invalid format %q: must be table or json", ErrUsage, flags.format)
	}
}

// writeRulesJSON writes the listing as an indented JSON envelope. Rules is
// always an array, never null.
func writeRulesJSON(w io.Writer, listing *runner.Listing) error {
	out := ruleListing{
		Plugin: listing.PluginName,
		Rules:  make([]ruleInfo, 0, len(listing.Entries)),
	}

	for _, entry := range listing.Entries {
		configs := make([]string, 0, len(entry.Configs))
		for _, badge := range entry.Configs {
			configs = append(configs, badge.Name)
		}

		out.Rules = append(out.Rules, ruleInfo{
			Name:                 entry.Rule.Name,
			Description:          entry.Rule.Description,
			Type:                 entry.Rule.Type,
			Fixable:              entry.Rule.Fixable,
			HasSuggestions:       entry.Rule.HasSuggestions,
			RequiresTypeChecking: entry.Rule.RequiresTypeChecking,
			Deprecated:           entry.Rule.Deprecated,
			ReplacedBy:           entry.Rule.ReplacedBy,
			Options:              entry.Rule.Options,
			Configs:              configs,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
