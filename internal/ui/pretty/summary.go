package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/runner"
)

const (
	wordDoc  = "doc"
	wordDocs = "docs"
)

func docWord(n int) string {
	if n == 1 {
		return wordDoc
	}
	return wordDocs
}

// FormatSummaryOneLine formats run statistics as a single line.
// Check mode example: "2 docs stale, 1 violation".
// Write mode example: "3 docs updated (1 stub created)".
func (s *Styles) FormatSummaryOneLine(result *runner.Result) string {
	stats := result.Stats

	if !result.Failed() && stats.DocsChanged == 0 {
		msg := s.Success.Render("All documents up to date") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.DocsProcessed, docWord(stats.DocsProcessed)))
		return msg + "\n"
	}

	var parts []string

	if result.CheckMode {
		if stats.DocsChanged > 0 {
			parts = append(parts, s.Failure.Render(
				fmt.Sprintf("%d %s stale", stats.DocsChanged, docWord(stats.DocsChanged))))
		}
	} else if stats.DocsWritten > 0 {
		updated := fmt.Sprintf("%d %s updated", stats.DocsWritten, docWord(stats.DocsWritten))
		if stats.DocsStubbed > 0 {
			stubWord := "stubs"
			if stats.DocsStubbed == 1 {
				stubWord = "stub"
			}
			updated += fmt.Sprintf(" (%d %s created)", stats.DocsStubbed, stubWord)
		}
		parts = append(parts, s.Success.Render(updated))
	}

	if stats.ViolationsTotal > 0 {
		violationWord := "violations"
		if stats.ViolationsTotal == 1 {
			violationWord = "violation"
		}
		parts = append(parts, s.Error.Render(
			fmt.Sprintf("%d %s", stats.ViolationsTotal, violationWord)))
	}

	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d %s checked", stats.DocsProcessed, docWord(stats.DocsProcessed)))
	}

	return strings.Join(parts, ", ") + "\n"
}
