package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/ruledoc/internal/logging"
	"github.com/yaklabco/ruledoc/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter ruledoc configuration file",
		Long: `Create a .ruledoc.yml configuration file in the current directory with
the default settings written out. The file can be customized to point at a
different manifest, select notices and columns, or map config emojis.

Examples:
  ruledoc init                    Create minimal .ruledoc.yml
  ruledoc init --full             Create full template with every option listed
  ruledoc init --output custom.yml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every option listed")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .ruledoc.yml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.Default()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".ruledoc.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	// An existing file is only overwritten with --force or an interactive yes.
	if _, err := os.Stat(absPath); err == nil {
		if !flags.force && !confirmOverwrite(cmd, outputPath) {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'ruledoc generate' to update rule docs and the rules table")

	return nil
}

// confirmOverwrite asks before clobbering an existing file. Non-interactive
// runs always decline, so scripts need --force.
func confirmOverwrite(cmd *cobra.Command, path string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}

	fmt.Fprintf(cmd.OutOrStdout(), "File %q already exists. Overwrite? [y/N] ", path)

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
