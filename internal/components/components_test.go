package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButton(t *testing.T) {
	no := false

	tests := []struct {
		name      string
		opts      ButtonOptions
		wantClass string
		wantIcon  string
		wantURL   string
	}{
		{
			name:      "defaults",
			wantClass: "btn btn-default",
			wantURL:   "#",
		},
		{
			name:      "typed and sized",
			opts:      ButtonOptions{Type: "primary", Size: "large", URL: "/save"},
			wantClass: "btn btn-primary btn-large",
			wantURL:   "/save",
		},
		{
			name:      "disabled",
			opts:      ButtonOptions{Disabled: true},
			wantClass: "btn btn-default disabled",
			wantURL:   "#",
		},
		{
			name:      "disabled but explicitly not enabled",
			opts:      ButtonOptions{Disabled: true, Enabled: &no},
			wantClass: "btn btn-default",
			wantURL:   "#",
		},
		{
			name:      "icon on typed button is white",
			opts:      ButtonOptions{Type: "danger", Icon: "trash"},
			wantClass: "btn btn-danger",
			wantIcon:  "glyphicon glyphicon-trash glyphicon-white",
			wantURL:   "#",
		},
		{
			name:      "icon on link button",
			opts:      ButtonOptions{Type: "link", Icon: "star"},
			wantClass: "btn btn-link",
			wantIcon:  "glyphicon glyphicon-star",
			wantURL:   "#",
		},
		{
			name:      "icon on default button",
			opts:      ButtonOptions{Icon: "star"},
			wantClass: "btn btn-default",
			wantIcon:  "glyphicon glyphicon-star",
			wantURL:   "#",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Button("Save", tt.opts)
			assert.Equal(t, "Save", got.Text)
			assert.Equal(t, tt.wantClass, got.ButtonClass)
			assert.Equal(t, tt.wantIcon, got.IconClass)
			assert.Equal(t, tt.wantURL, got.URL)
		})
	}
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "glyphicon glyphicon-user", Icon("user", false).IconClass)
	assert.Equal(t, "glyphicon glyphicon-user glyphicon-white", Icon("user", true).IconClass)
}

func TestActiveURL(t *testing.T) {
	assert.Equal(t, "active", ActiveURL("/sites", "/sites", ""))
	assert.Equal(t, "current", ActiveURL("/sites", "/sites", "current"))
	assert.Equal(t, "", ActiveURL("/sites/1", "/sites", ""))
}

func TestMessages(t *testing.T) {
	alerts := Messages([]Message{
		{Level: "error", Text: "Could not save."},
		{Level: "SUCCESS", Text: "Saved.", Tags: "fade in"},
		{Level: "debug", Text: "query took 3ms"},
		{Text: "No level."},
	})
	require.Len(t, alerts, 4)

	assert.Equal(t, "alert alert-danger", alerts[0].Class)
	assert.Equal(t, "Error", alerts[0].Heading)
	assert.Equal(t, "Could not save.", alerts[0].Text)

	assert.Equal(t, "alert alert-success fade in", alerts[1].Class)
	assert.Equal(t, "Success", alerts[1].Heading)

	assert.Equal(t, "alert alert-info", alerts[2].Class)
	assert.Equal(t, "Debug", alerts[2].Heading)

	assert.Equal(t, "alert alert-info", alerts[3].Class)

	assert.True(t, strings.HasPrefix(alerts[0].ID, "alert-"))
	assert.NotEqual(t, alerts[0].ID, alerts[1].ID)
	assert.Empty(t, Messages(nil))
}
