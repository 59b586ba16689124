package completion

import "strings"

// Filter returns the entries of candidates that contain text in either its
// lower-case or upper-case form. The input slice is never modified.
func Filter(candidates []string, text string) []string {
	lower := strings.ToLower(text)
	upper := strings.ToUpper(text)

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.Contains(c, lower) || strings.Contains(c, upper) {
			out = append(out, c)
		}
	}
	return out
}
