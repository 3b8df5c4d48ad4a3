package cache

import (
	"sort"
	"strings"
)

// Key builds a deterministic cache key from a collection prefix and the
// query parameters that shape the result. Parameters are sorted so two
// requests with the same filters in different order share an entry.
func Key(prefix string, params map[string]string) string {
	if len(params) == 0 {
		return prefix
	}

	names := make([]string, 0, len(params))
	for name, value := range params {
		if value == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return prefix
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(prefix)
	for _, name := range names {
		b.WriteByte(':')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}
	return b.String()
}
