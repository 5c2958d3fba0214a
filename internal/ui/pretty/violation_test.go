package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/ruledoc/internal/ui/pretty"
	"github.com/yaklabco/ruledoc/pkg/validate"
)

func TestFormatViolation(t *testing.T) {
	styles := pretty.NewStyles(false)

	v := validate.Violation{
		Path:    "docs/rules/no-foo.md",
		Rule:    "no-foo",
		Kind:    validate.KindMissingSection,
		Message: `missing required section "Examples"`,
	}

	got := styles.FormatViolation(v)

	assert.Equal(t, "  docs/rules/no-foo.md  missing-section  missing required section \"Examples\"  (no-foo)\n", got)
}

func TestFormatViolation_NoRule(t *testing.T) {
	styles := pretty.NewStyles(false)

	v := validate.Violation{
		Path:    "docs/rules/no-gone.md",
		Kind:    validate.KindOrphanDoc,
		Message: "no rule named no-gone",
	}

	got := styles.FormatViolation(v)

	assert.Equal(t, "  docs/rules/no-gone.md  orphan-doc  no rule named no-gone\n", got)
	assert.NotContains(t, got, "(")
}

func TestFormatWarning(t *testing.T) {
	styles := pretty.NewStyles(false)

	got := styles.FormatWarning(`config "x" references unknown rule "y"`)

	assert.Equal(t, "  warning  config \"x\" references unknown rule \"y\"\n", got)
}

func TestFormatDocStatus(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "  updated README.md\n", styles.FormatDocStatus("updated", "README.md"))
	assert.Equal(t, "  created docs/rules/no-new.md\n", styles.FormatDocStatus("created", "docs/rules/no-new.md"))
}

func TestFormatDocHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "README.md (stale)", styles.FormatDocHeader("README.md"))
}
