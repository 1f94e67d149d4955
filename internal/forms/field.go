package forms

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DukeRupert/bootkit/internal/attrs"
)

// Field is a bound form field.
type Field struct {
	Name     string
	Label    string
	HelpText string
	Value    string
	Values   []string // Selected values of multi-value widgets
	Errors   []string
	Required bool
	ReadOnly bool // Field is not editable
	Hidden   bool
	Widget   Widget
}

// ID returns the DOM id of the field's input.
func (f Field) ID() string {
	if id, ok := f.Widget.Attrs.Get("id"); ok {
		return id
	}
	return "id_" + f.Name
}

// LabelText returns the label, or the humanized field name when none is set.
func (f Field) LabelText() string {
	if f.Label != "" {
		return f.Label
	}
	name := strings.TrimSpace(strings.ReplaceAll(f.Name, "_", " "))
	if name == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(name)
	return cases.Upper(language.English).String(name[:size]) + name[size:]
}

// HasErrors reports whether the field failed validation.
func (f Field) HasErrors() bool {
	return len(f.Errors) > 0
}

// IsMultiple reports whether the field accepts several values.
func (f Field) IsMultiple() bool {
	return f.Widget.Kind == WidgetSelectMultiple || f.Widget.Kind == WidgetCheckboxSelectMultiple
}

// IsSelected reports whether value is the field's value, or one of its values.
func (f Field) IsSelected(value string) bool {
	if f.Value == value {
		return true
	}
	for _, v := range f.Values {
		if v == value {
			return true
		}
	}
	return false
}

// InputAttrs returns the widget attributes completed with the id and name
// and the disabled flag when the field is disabled.
func (f Field) InputAttrs() attrs.Attrs {
	a := attrs.Attrs{{Name: "id", Value: f.ID()}, {Name: "name", Value: f.Name}}
	for _, attr := range f.Widget.Attrs {
		if attr.Name == "id" {
			continue
		}
		a = a.Set(attr.Name, attr.Value)
	}
	if f.Required && !a.Has("required") {
		a = a.Set("required", "required")
	}
	return a
}

// InputType returns the Bootstrap input type used to render f: the widget's
// explicit input type if any, otherwise the type mapped from its kind.
func InputType(f Field) string {
	if f.Widget.InputType != "" {
		return f.Widget.InputType
	}
	return f.Widget.Kind.InputType()
}

// IsDisabled reports whether f is not editable, or is marked readonly or
// disabled in its widget attributes.
func IsDisabled(f Field) bool {
	if f.ReadOnly {
		return true
	}
	if v, ok := f.Widget.Attrs.Get("readonly"); ok && isTruthy(v) {
		return true
	}
	if v, ok := f.Widget.Attrs.Get("disabled"); ok && isTruthy(v) {
		return true
	}
	return false
}

// IsEnabled is the negation of IsDisabled.
func IsEnabled(f Field) bool {
	return !IsDisabled(f)
}

// Prepend returns the add-on text rendered before the input, if any.
func Prepend(f Field) string {
	return f.Widget.Prepend
}

// Append returns the add-on text rendered after the input, if any.
func Append(f Field) string {
	return f.Widget.Append
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "false", "0", "off", "no":
		return false
	}
	return true
}
