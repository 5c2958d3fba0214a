package config

import "strings"

// RuleDocPath expands the per-rule document path template for a rule name.
func RuleDocPath(template, name string) string {
	return strings.ReplaceAll(template, "{name}", name)
}

// FormatTitle builds a rule doc title from the given format.
// Description-based formats fall back to the corresponding name form
// when the rule has no description.
func FormatTitle(format TitleFormat, description, name, prefixedName string) string {
	switch format {
	case TitleFormatDesc:
		if description == "" {
			return name
		}
		return description
	case TitleFormatDescParensName:
		if description == "" {
			return name
		}
		return description + " (" + name + ")"
	case TitleFormatDescParensPrefixName:
		if description == "" {
			return "`" + prefixedName + "`"
		}
		return description + " (`" + prefixedName + "`)"
	case TitleFormatName:
		return name
	case TitleFormatPrefixName:
		return prefixedName
	default:
		// Default to the prefixed-name-in-parens format
		if description == "" {
			return "`" + prefixedName + "`"
		}
		return description + " (`" + prefixedName + "`)"
	}
}
