package attrs

import (
	"strings"
)

// ParseArgs splits a helper argument string such as
// `vertical,class="span4",id=name` into positional arguments and keyword
// attributes. Surrounding quotes are trimmed from values.
func ParseArgs(s string) (args []string, kwargs Attrs) {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if k, v, ok := strings.Cut(part, "="); ok {
			kwargs = append(kwargs, Attr{Name: strings.TrimSpace(k), Value: unquote(strings.TrimSpace(v))})
			continue
		}
		args = append(args, unquote(part))
	}
	return args, kwargs
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
