package script

import (
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// Discover expands doublestar patterns (e.g. "testdata/**/*.yaml") against
// fs and returns the sorted, de-duplicated matches.
func Discover(fs afero.Fs, patterns ...string) ([]string, error) {
	seen := map[string]bool{}
	var out []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid pattern %q", pattern)
		}

		base, rel := doublestar.SplitPattern(pattern)
		root := fs
		if base != "." {
			root = afero.NewBasePathFs(fs, base)
		}

		matches, err := doublestar.Glob(afero.NewIOFS(root), rel, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("globbing %q: %w", pattern, err)
		}

		for _, m := range matches {
			if base != "." {
				m = path.Join(base, m)
			}
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}

	sort.Strings(out)
	return out, nil
}
