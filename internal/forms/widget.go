// Package forms describes forms and fields in the shape the Bootstrap form
// templates expect, and classifies widgets into Bootstrap input types.
package forms

import (
	"github.com/DukeRupert/bootkit/internal/attrs"
)

// WidgetKind identifies the widget used to render a field.
type WidgetKind int

const (
	WidgetOther WidgetKind = iota
	WidgetText
	WidgetTextarea
	WidgetCheckbox
	WidgetCheckboxSelectMultiple
	WidgetRadio
	WidgetSelect
	WidgetSelectMultiple
)

// Bootstrap input types returned by InputType.
const (
	InputText     = "text"
	InputCheckbox = "checkbox"
	InputRadio    = "radio"
	InputSelect   = "select"
	InputTextarea = "textarea"
	InputDefault  = "default"
)

var widgetKindNames = map[WidgetKind]string{
	WidgetOther:                  "other",
	WidgetText:                   "text",
	WidgetTextarea:               "textarea",
	WidgetCheckbox:               "checkbox",
	WidgetCheckboxSelectMultiple: "checkbox_select_multiple",
	WidgetRadio:                  "radio",
	WidgetSelect:                 "select",
	WidgetSelectMultiple:         "select_multiple",
}

func (k WidgetKind) String() string {
	if s, ok := widgetKindNames[k]; ok {
		return s
	}
	return "other"
}

// ParseWidgetKind maps a widget name as produced by String back to its kind.
// Unknown names map to WidgetOther.
func ParseWidgetKind(s string) WidgetKind {
	for k, name := range widgetKindNames {
		if name == s {
			return k
		}
	}
	return WidgetOther
}

// InputType returns the Bootstrap input type for the kind.
func (k WidgetKind) InputType() string {
	switch k {
	case WidgetText:
		return InputText
	case WidgetCheckbox, WidgetCheckboxSelectMultiple:
		return InputCheckbox
	case WidgetRadio:
		return InputRadio
	case WidgetSelect, WidgetSelectMultiple:
		return InputSelect
	case WidgetTextarea:
		return InputTextarea
	default:
		return InputDefault
	}
}

// Choice is one option of a select, radio or checkbox group.
type Choice struct {
	Value string
	Label string
}

// Widget describes how a field is rendered.
type Widget struct {
	Kind      WidgetKind
	InputType string // Overrides the kind's input type when set
	Attrs     attrs.Attrs
	Choices   []Choice
	Prepend   string // Add-on text shown before the input
	Append    string // Add-on text shown after the input
}
