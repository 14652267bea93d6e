package list

import (
	"fmt"
	"strings"
)

// Target is the logical intent recovered from one line of connect input:
// a session name (possibly empty) and an optional embedded absolute path.
type Target struct {
	Name string
	Path string
}

// Parse recovers a Target from a raw line. The line may carry an ASCII tag,
// an icon prefix, or no prefix at all (fuzzy finders strip and unquote).
//
// After the prefix is removed the line splits into whitespace tokens; the
// first token starting with '/' is the path boundary. Tokens before it form
// the name, the boundary token is the embedded path, and anything after it
// is discarded as formatting artifacts. An entirely empty line is an error.
func Parse(raw string) (Target, error) {
	s := stripPrefix(strings.TrimSpace(raw))

	fields := strings.Fields(s)
	boundary := -1
	for i, f := range fields {
		if strings.HasPrefix(f, "/") {
			boundary = i
			break
		}
	}

	var t Target
	if boundary >= 0 {
		t.Name = strings.Join(fields[:boundary], " ")
		t.Path = fields[boundary]
	} else {
		t.Name = strings.Join(fields, " ")
	}

	if t.Name == "" && t.Path == "" {
		return Target{}, fmt.Errorf("nothing to connect to in %q", raw)
	}
	return t, nil
}

// stripPrefix removes a leading "[...]" tag or a known icon glyph, plus the
// spacing that followed it in formatted output.
func stripPrefix(s string) string {
	if strings.HasPrefix(s, "[") {
		if i := strings.IndexByte(s, ']'); i >= 0 {
			return strings.TrimPrefix(s[i+1:], " ")
		}
	}
	for _, icon := range []string{IconTmux, IconZoxide} {
		if rest, ok := strings.CutPrefix(s, icon); ok {
			// Icon mode renders two spaces after the glyph; accept fewer in
			// case an intermediary collapsed them.
			rest = strings.TrimPrefix(rest, " ")
			rest = strings.TrimPrefix(rest, " ")
			return rest
		}
	}
	return s
}
