package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error collects per-field validation messages keyed by the JSON field name.
type Error struct {
	Fields map[string]string
}

// Error joins the field messages in field name order.
func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return strings.Join(msgs, "; ")
}
