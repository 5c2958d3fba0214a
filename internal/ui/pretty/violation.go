package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/validate"
)

// FormatViolation formats a single validation finding for terminal output.
func (s *Styles) FormatViolation(v validate.Violation) string {
	var builder strings.Builder

	builder.WriteString("  ")
	builder.WriteString(s.Path.Render(v.Path))
	builder.WriteString("  ")
	builder.WriteString(s.Error.Render(string(v.Kind)))
	builder.WriteString("  ")
	builder.WriteString(s.Message.Render(v.Message))
	if v.Rule != "" {
		builder.WriteString("  ")
		builder.WriteString(s.RuleName.Render("(" + v.Rule + ")"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatWarning formats a non-fatal run warning.
func (s *Styles) FormatWarning(msg string) string {
	return "  " + s.Warning.Render("warning") + "  " + s.Message.Render(msg) + "\n"
}

// FormatDocStatus formats one processed document line for write mode.
func (s *Styles) FormatDocStatus(status, path string) string {
	return fmt.Sprintf("  %s %s\n", s.Success.Render(status), s.Path.Render(path))
}

// FormatDocHeader formats a stale-document header for check mode.
func (s *Styles) FormatDocHeader(path string) string {
	return s.Path.Render(path) + s.Dim.Render(" (stale)")
}
