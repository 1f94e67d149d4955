package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/DukeRupert/bootkit/internal/attrs"
	"github.com/DukeRupert/bootkit/internal/components"
	"github.com/DukeRupert/bootkit/internal/forms"
	"github.com/DukeRupert/bootkit/internal/pagination"
)

// Fixture describes the components shown on a preview page.
type Fixture struct {
	Title      string            `yaml:"title"`
	Path       string            `yaml:"path"`
	Nav        []NavFixture      `yaml:"nav"`
	Form       *FormFixture      `yaml:"form"`
	Pagination *PageFixture      `yaml:"pagination"`
	Buttons    []ButtonFixture   `yaml:"buttons"`
	Icons      []string          `yaml:"icons"`
	Messages   []MessageFixture  `yaml:"messages"`
	Attrs      map[string]string `yaml:"attrs"`
}

type NavFixture struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type FormFixture struct {
	Layout string         `yaml:"layout"`
	Errors []string       `yaml:"errors"`
	Fields []FieldFixture `yaml:"fields"`
}

type FieldFixture struct {
	Name      string            `yaml:"name"`
	Label     string            `yaml:"label"`
	HelpText  string            `yaml:"help_text"`
	Widget    string            `yaml:"widget"`
	InputType string            `yaml:"input_type"`
	Value     string            `yaml:"value"`
	Values    []string          `yaml:"values"`
	Required  bool              `yaml:"required"`
	ReadOnly  bool              `yaml:"readonly"`
	Hidden    bool              `yaml:"hidden"`
	Prepend   string            `yaml:"prepend"`
	Append    string            `yaml:"append"`
	Errors    []string          `yaml:"errors"`
	Attrs     map[string]string `yaml:"attrs"`
	Choices   []ChoiceFixture   `yaml:"choices"`
}

type ChoiceFixture struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type PageFixture struct {
	Total       int    `yaml:"total"`
	Current     int    `yaml:"current"`
	PagesToShow int    `yaml:"pages_to_show"`
	URL         string `yaml:"url"`
	Size        string `yaml:"size"`
	Align       string `yaml:"align"`
	Extra       string `yaml:"extra"`
}

type ButtonFixture struct {
	Text     string `yaml:"text"`
	Type     string `yaml:"type"`
	Size     string `yaml:"size"`
	Icon     string `yaml:"icon"`
	URL      string `yaml:"url"`
	Disabled bool   `yaml:"disabled"`
}

type MessageFixture struct {
	Level string `yaml:"level"`
	Text  string `yaml:"text"`
}

// LoadFixture reads a YAML fixture from path.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes a YAML fixture.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if f.Title == "" {
		f.Title = "Component preview"
	}
	if f.Path == "" {
		f.Path = "/"
	}
	return &f, nil
}

// FormModel converts the form section into a bound form.
func (f *Fixture) FormModel() *forms.Form {
	if f.Form == nil {
		return nil
	}

	form := &forms.Form{NonFieldErrors: f.Form.Errors}
	for _, ff := range f.Form.Fields {
		choices := make([]forms.Choice, 0, len(ff.Choices))
		for _, c := range ff.Choices {
			choices = append(choices, forms.Choice{Value: c.Value, Label: c.Label})
		}

		form.Fields = append(form.Fields, forms.Field{
			Name:     ff.Name,
			Label:    ff.Label,
			HelpText: ff.HelpText,
			Value:    ff.Value,
			Values:   ff.Values,
			Errors:   ff.Errors,
			Required: ff.Required,
			ReadOnly: ff.ReadOnly,
			Hidden:   ff.Hidden,
			Widget: forms.Widget{
				Kind:      forms.ParseWidgetKind(ff.Widget),
				InputType: ff.InputType,
				Attrs:     sortedAttrs(ff.Attrs),
				Choices:   choices,
				Prepend:   ff.Prepend,
				Append:    ff.Append,
			},
		})
	}
	return form
}

// PageModel converts the pagination section into a page and its options.
func (f *Fixture) PageModel(defaultPagesToShow int) (pagination.Page, pagination.Options, bool) {
	if f.Pagination == nil {
		return pagination.Page{}, pagination.Options{}, false
	}

	p := f.Pagination
	opts := pagination.Options{
		PagesToShow: p.PagesToShow,
		URL:         p.URL,
		Size:        p.Size,
		Align:       p.Align,
		Extra:       p.Extra,
	}
	if opts.PagesToShow == 0 {
		opts.PagesToShow = defaultPagesToShow
	}
	return pagination.Page{Number: p.Current, NumPages: p.Total}, opts, true
}

// ButtonModels converts the buttons section.
func (f *Fixture) ButtonModels() []components.ButtonContext {
	out := make([]components.ButtonContext, 0, len(f.Buttons))
	for _, b := range f.Buttons {
		out = append(out, components.Button(b.Text, components.ButtonOptions{
			Type:     b.Type,
			Size:     b.Size,
			Icon:     b.Icon,
			URL:      b.URL,
			Disabled: b.Disabled,
		}))
	}
	return out
}

// MessageModels converts the messages section.
func (f *Fixture) MessageModels() []components.Message {
	out := make([]components.Message, 0, len(f.Messages))
	for _, m := range f.Messages {
		out = append(out, components.Message{Level: m.Level, Text: m.Text})
	}
	return out
}

// AttrModel returns the container attributes in name order.
func (f *Fixture) AttrModel() attrs.Attrs {
	return sortedAttrs(f.Attrs)
}
