package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/ruledoc/pkg/config"
	"github.com/yaklabco/ruledoc/pkg/notices"
	"github.com/yaklabco/ruledoc/pkg/rules"
)

// partition is one table's worth of rows under an optional sub-heading.
type partition struct {
	value   string
	entries []Entry
}

// RulesTable renders the rules summary block: a legend of the badge kinds
// actually displayed, then one markdown table, or one table per attribute
// value when splitting. The block carries no surrounding blank lines; the
// caller splices it between the list markers.
func RulesTable(entries []Entry, opts Options) string {
	if len(entries) == 0 {
		return ""
	}

	parts := partitionEntries(entries, opts.SplitBy)
	single := singleConfig(entries)

	used := make(map[string]bool)
	cols := make([][]string, len(parts))
	for i := range parts {
		sortEntries(parts[i].entries, opts.SortBy)
		cols[i] = visibleColumns(parts[i].entries, opts)
		for _, c := range cols[i] {
			used[c] = true
		}
	}

	blocks := make([]string, 0, 2*len(parts)+1)
	if lg := legendBlock(used, entries, single, opts); lg != "" {
		blocks = append(blocks, lg)
	}
	for i := range parts {
		if parts[i].value != "" {
			blocks = append(blocks, "### "+titleCase(parts[i].value))
		}
		blocks = append(blocks, renderTable(parts[i].entries, cols[i], single, opts))
	}
	return strings.Join(blocks, "\n\n")
}

// partitionEntries groups rows by the split attribute. Rows missing the
// attribute form an unnamed leading partition; the rest follow in
// case-insensitive value order.
func partitionEntries(entries []Entry, splitBy string) []partition {
	if splitBy == "" {
		return []partition{{entries: slices.Clone(entries)}}
	}

	groups := make(map[string][]Entry)
	for _, e := range entries {
		v := e.Rule.Attribute(splitBy)
		groups[v] = append(groups[v], e)
	}

	values := make([]string, 0, len(groups))
	for v := range groups {
		values = append(values, v)
	}
	slices.SortFunc(values, rules.CompareFold)

	parts := make([]partition, 0, len(values))
	for _, v := range values {
		parts = append(parts, partition{value: v, entries: groups[v]})
	}
	return parts
}

// sortEntries orders rows case-insensitively by name, with deprecated rules
// always last and any sort-by columns grouping non-empty cells first.
func sortEntries(entries []Entry, sortBy []notices.Kind) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Rule.Deprecated != b.Rule.Deprecated {
			if a.Rule.Deprecated {
				return 1
			}
			return -1
		}
		for _, kind := range sortBy {
			av, bv := cellValue(a, kind) != "", cellValue(b, kind) != ""
			if av != bv {
				if av {
					return -1
				}
				return 1
			}
		}
		return rules.CompareFold(a.Rule.Name, b.Rule.Name)
	})
}

// visibleColumns resolves the selected columns against the rows: the name
// column is unconditional, every other column appears only when at least
// one row has content for it.
func visibleColumns(entries []Entry, opts Options) []string {
	cols := []string{config.ColumnName}

	if opts.hasColumn(config.ColumnDescription) {
		for _, e := range entries {
			if e.Rule.Description != "" {
				cols = append(cols, config.ColumnDescription)
				break
			}
		}
	}

	for _, kind := range notices.Kinds() {
		if !opts.hasColumn(string(kind)) {
			continue
		}
		for _, e := range entries {
			if cellValue(e, kind) != "" {
				cols = append(cols, string(kind))
				break
			}
		}
	}
	return cols
}

// singleConfig reports the one config shared by every badge across the
// rows, or nil when the rows reference zero or several configs.
func singleConfig(entries []Entry) *notices.ConfigBadge {
	var found *notices.ConfigBadge
	for i := range entries {
		for j := range entries[i].Configs {
			b := &entries[i].Configs[j]
			if found == nil {
				found = b
			} else if found.Name != b.Name {
				return nil
			}
		}
	}
	return found
}

// cellValue is the badge content of one row under one column, empty when
// the badge does not apply.
func cellValue(e Entry, kind notices.Kind) string {
	switch kind {
	case notices.KindConfigs:
		markers := make([]string, 0, len(e.Configs))
		for _, b := range e.Configs {
			markers = append(markers, b.Marker())
		}
		return strings.Join(markers, " ")
	case notices.KindFixable:
		if e.Rule.Fixable {
			return kind.Emoji()
		}
	case notices.KindSuggestions:
		if e.Rule.HasSuggestions {
			return kind.Emoji()
		}
	case notices.KindTypeChecking:
		if e.Rule.RequiresTypeChecking {
			return kind.Emoji()
		}
	case notices.KindDeprecated:
		if e.Rule.Deprecated {
			return kind.Emoji()
		}
	case notices.KindOptions:
		if e.Rule.HasOptions() {
			return kind.Emoji()
		}
	case notices.KindType:
		return e.Rule.Type
	}
	return ""
}

// cellText renders the final cell for a column, escaping free-form text.
func cellText(e Entry, col string, opts Options) string {
	switch col {
	case config.ColumnName:
		return fmt.Sprintf("[%s](%s)", e.Rule.Name, relLink(opts.PathRuleList, opts.ruleDocPath(e.Rule.Name)))
	case config.ColumnDescription:
		return escapeCell(e.Rule.Description)
	case config.ColumnType:
		return escapeCell(e.Rule.Type)
	default:
		return cellValue(e, notices.Kind(col))
	}
}

// columnHeader is the header cell for a column. A table whose rows all
// belong to one config uses that config's own marker instead of 💼.
func columnHeader(col string, single *notices.ConfigBadge) string {
	switch col {
	case config.ColumnName:
		return "Name"
	case config.ColumnDescription:
		return "Description"
	case config.ColumnConfigs:
		if single != nil {
			return single.Marker()
		}
		return "💼"
	default:
		return notices.Kind(col).Emoji()
	}
}

// renderTable lays out one markdown table with left-aligned, width-padded
// columns.
func renderTable(entries []Entry, cols []string, single *notices.ConfigBadge, opts Options) string {
	header := make([]string, len(cols))
	widths := make([]int, len(cols))
	for i, c := range cols {
		header[i] = columnHeader(c, single)
		widths[i] = max(3, lipgloss.Width(header[i]))
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = cellText(e, c, opts)
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
		rows = append(rows, row)
	}

	var sb strings.Builder
	writeRow(&sb, header, widths)
	writeSeparator(&sb, widths)
	for i, row := range rows {
		if i == len(rows)-1 {
			sb.WriteString(formatRow(row, widths))
		} else {
			writeRow(&sb, row, widths)
		}
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString(formatRow(cells, widths))
	sb.WriteString("\n")
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
	}
	return "| " + strings.Join(parts, " | ") + " |"
}

func writeSeparator(sb *strings.Builder, widths []int) {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = ":" + strings.Repeat("-", w-1)
	}
	sb.WriteString("| " + strings.Join(parts, " | ") + " |\n")
}

// legendBlock explains every badge kind displayed anywhere in the tables,
// one hard-wrapped line per entry. Configs sharing an emoji are explained
// once.
func legendBlock(used map[string]bool, entries []Entry, single *notices.ConfigBadge, opts Options) string {
	var lines []string

	if used[config.ColumnConfigs] {
		if single == nil {
			lines = append(lines, "💼 Configurations enabled in.")
		}
		for _, b := range displayedConfigs(entries) {
			name := fmt.Sprintf("`%s`", b.Name)
			if opts.URLConfigs != "" {
				name = fmt.Sprintf("[%s](%s)", name, opts.URLConfigs)
			}
			lines = append(lines, fmt.Sprintf("%s Enabled in the %s config.", b.Marker(), name))
		}
	}
	if used[config.ColumnFixable] {
		lines = append(lines, "🔧 Automatically fixable by the `--fix` CLI option.")
	}
	if used[config.ColumnSuggestions] {
		lines = append(lines, "💡 Manually fixable by editor suggestions.")
	}
	if used[config.ColumnTypeChecking] {
		lines = append(lines, "💭 Requires type information.")
	}
	if used[config.ColumnDeprecated] {
		lines = append(lines, "❌ Deprecated.")
	}
	if used[config.ColumnOptions] {
		lines = append(lines, "⚙️ Configurable with rule options.")
	}
	if used[config.ColumnType] {
		lines = append(lines, "🗂️ The type of rule.")
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\\\n")
}

// displayedConfigs is the de-duplicated union of config badges across all
// rows, in case-insensitive name order, keeping the first config for each
// distinct marker.
func displayedConfigs(entries []Entry) []notices.ConfigBadge {
	byName := make(map[string]notices.ConfigBadge)
	names := make([]string, 0, 4)
	for _, e := range entries {
		for _, b := range e.Configs {
			if _, ok := byName[b.Name]; !ok {
				byName[b.Name] = b
				names = append(names, b.Name)
			}
		}
	}
	slices.SortFunc(names, rules.CompareFold)

	seen := make(map[string]bool, len(names))
	out := make([]notices.ConfigBadge, 0, len(names))
	for _, n := range names {
		b := byName[n]
		if seen[b.Marker()] {
			continue
		}
		seen[b.Marker()] = true
		out = append(out, b)
	}
	return out
}
