package forms

import (
	"strings"

	"github.com/DukeRupert/bootkit/internal/domain"
)

// Form is a bound form.
type Form struct {
	Fields         []Field
	NonFieldErrors []string
}

// VisibleFields returns the fields that render a label and input.
func (f Form) VisibleFields() []Field {
	var out []Field
	for _, field := range f.Fields {
		if !field.Hidden {
			out = append(out, field)
		}
	}
	return out
}

// HiddenFields returns the fields rendered as hidden inputs.
func (f Form) HiddenFields() []Field {
	var out []Field
	for _, field := range f.Fields {
		if field.Hidden {
			out = append(out, field)
		}
	}
	return out
}

// HasErrors reports whether the form or any of its fields failed validation.
func (f Form) HasErrors() bool {
	if len(f.NonFieldErrors) > 0 {
		return true
	}
	for _, field := range f.Fields {
		if field.HasErrors() {
			return true
		}
	}
	return false
}

// Formset is a set of forms of the same kind edited together.
type Formset struct {
	ManagementForm Form
	Forms          []Form
	Errors         []string
}

// Layouts understood by the form templates.
const (
	LayoutVertical   = "vertical"
	LayoutHorizontal = "horizontal"
	LayoutInline     = "inline"
	LayoutSearch     = "search"
)

// Layout selects how a form or field is laid out.
type Layout struct {
	Name  string
	Float bool
}

// ParseLayout parses a layout argument such as "horizontal" or
// "vertical,float". The name is lower-cased and defaults to vertical.
func ParseLayout(s string) Layout {
	name, rest, _ := strings.Cut(s, ",")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = LayoutVertical
	}
	return Layout{
		Name:  name,
		Float: strings.ToLower(strings.TrimSpace(rest)) == "float",
	}
}

// TargetKind tells AsBootstrap what it is rendering.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetForm
	TargetField
	TargetFormset
)

func (k TargetKind) String() string {
	switch k {
	case TargetForm:
		return "form"
	case TargetField:
		return "field"
	case TargetFormset:
		return "formset"
	default:
		return "none"
	}
}

// Target is a form, a single field or a formset to render.
type Target struct {
	Kind    TargetKind
	Form    *Form
	Field   *Field
	Formset *Formset
}

// FormTarget wraps a form.
func FormTarget(f *Form) Target {
	return Target{Kind: TargetForm, Form: f}
}

// FieldTarget wraps a field.
func FieldTarget(f *Field) Target {
	return Target{Kind: TargetField, Field: f}
}

// FormsetTarget wraps a formset.
func FormsetTarget(fs *Formset) Target {
	return Target{Kind: TargetFormset, Formset: fs}
}

// Template names of the views AsBootstrap produces.
const (
	TemplateForm    = "form"
	TemplateField   = "field"
	TemplateFormset = "formset"
)

// View is the template name and data needed to render a target.
type View struct {
	Template string
	Form     *Form
	Field    *Field
	Formset  *Formset
	Layout   string
	Float    bool
	// Keyword arguments of the helper call, layout and float included. The
	// embedded templates ignore them; override templates may read them.
	Attrs map[string]string
}

// AsBootstrap returns the view that renders target with the given layout.
// A target without a form, field or formset is an invalid argument.
func AsBootstrap(target Target, layout Layout) (View, error) {
	v := View{Layout: layout.Name, Float: layout.Float}

	switch {
	case target.Kind == TargetForm && target.Form != nil:
		v.Template = TemplateForm
		v.Form = target.Form
	case target.Kind == TargetField && target.Field != nil:
		v.Template = TemplateField
		v.Field = target.Field
	case target.Kind == TargetFormset && target.Formset != nil:
		v.Template = TemplateFormset
		v.Formset = target.Formset
	default:
		return View{}, domain.Invalid("forms.as_bootstrap", "expected a form, field or formset")
	}

	return v, nil
}
