// Package attrs renders and merges HTML attribute lists for widget markup.
package attrs

import (
	"html/template"
	"slices"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered attribute list. Order is preserved when rendering.
type Attrs []Attr

// FromMap builds Attrs from a map, in the given key order. Keys missing
// from m are skipped.
func FromMap(m map[string]string, order ...string) Attrs {
	out := make(Attrs, 0, len(order))
	for _, k := range order {
		if v, ok := m[k]; ok {
			out = append(out, Attr{Name: k, Value: v})
		}
	}
	return out
}

// Get returns the value of name and whether it is set.
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether name is set.
func (a Attrs) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set returns a copy of a with name set to value, replacing any previous value.
func (a Attrs) Set(name, value string) Attrs {
	out := make(Attrs, len(a), len(a)+1)
	copy(out, a)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, Attr{Name: name, Value: value})
}

// String joins the attributes as escaped name="value" pairs.
func (a Attrs) String() string {
	pairs := make([]string, 0, len(a))
	for _, attr := range a {
		pairs = append(pairs, template.HTMLEscapeString(attr.Name)+`="`+template.HTMLEscapeString(attr.Value)+`"`)
	}
	return strings.Join(pairs, " ")
}

// Render returns the attributes ready for inclusion in an HTML tag.
func Render(a Attrs) template.HTMLAttr {
	return template.HTMLAttr(a.String())
}

// Merge appends extra to base. A name present in both has the extra value
// appended after a space; class tokens already present are not repeated.
// base is not modified.
func Merge(base, extra Attrs) Attrs {
	out := make(Attrs, len(base), len(base)+len(extra))
	copy(out, base)

	for _, e := range extra {
		found := false
		for i := range out {
			if out[i].Name != e.Name {
				continue
			}
			found = true
			if e.Name == "class" {
				out[i].Value = AppendClasses(out[i].Value, e.Value)
			} else {
				out[i].Value += " " + e.Value
			}
			break
		}
		if !found {
			out = append(out, e)
		}
	}
	return out
}

// AppendClasses appends the classes of extra to base, skipping classes base
// already has. Order is preserved.
func AppendClasses(base, extra string) string {
	classes := strings.Fields(base)
	for _, c := range strings.Fields(extra) {
		if !slices.Contains(classes, c) {
			classes = append(classes, c)
		}
	}
	return strings.Join(classes, " ")
}

// MergeClasses merges Tailwind utility classes so that conflicting
// utilities resolve to the last one given. It is only meant for Tailwind
// class lists: Bootstrap names such as "hidden" or "table" are treated as
// utilities and may be dropped.
func MergeClasses(classes ...string) string {
	return twmerge.Merge(classes...)
}
