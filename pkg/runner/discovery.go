package runner

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverRuleDocs globs the rule-doc path template under the project
// directory and returns the matching documents as project-relative slash
// paths in sorted order. A template without the {name} placeholder cannot
// identify per-rule docs and yields nothing.
func DiscoverRuleDocs(projectDir, pathRuleDoc string) ([]string, error) {
	if !strings.Contains(pathRuleDoc, "{name}") {
		return nil, nil
	}

	pattern := strings.ReplaceAll(pathRuleDoc, "{name}", "*")
	fsys := os.DirFS(projectDir)

	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob rule docs %q: %w", pattern, err)
	}

	docs := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil || info.IsDir() {
			continue
		}
		docs = append(docs, m)
	}

	sort.Strings(docs)
	return docs, nil
}
