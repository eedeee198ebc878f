package pipeline

import "strings"

// UnwrapList turns a bracketed, quoted list string such as
// "['dry skin', 'oily skin']" into its trimmed, non-empty tokens.
// Quotes are removed wherever they appear.
func UnwrapList(raw string) []string {
	s := strings.Trim(strings.TrimSpace(raw), "[]")
	s = strings.NewReplacer("'", "", `"`, "").Replace(s)
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
