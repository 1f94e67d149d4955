// Package components builds the view models of small Bootstrap components:
// buttons, icons, navigation state and alert messages.
package components

// ButtonOptions are the optional arguments of a button.
type ButtonOptions struct {
	Type     string // primary, info, success, warning, danger, inverse, link
	Size     string // large, small, mini
	Disabled bool
	Enabled  *bool // When explicitly false, Disabled is ignored
	Icon     string
	URL      string
}

// ButtonContext is the view model of the button template.
type ButtonContext struct {
	Text        string
	URL         string
	ButtonClass string
	IconClass   string
}

// Button builds the context for a button labelled text.
func Button(text string, opts ButtonOptions) ButtonContext {
	class := "btn"
	if opts.Type != "" {
		class += " btn-" + opts.Type
	} else {
		class += " btn-default"
	}
	if opts.Size != "" {
		class += " btn-" + opts.Size
	}

	enabled := true
	if opts.Enabled != nil {
		enabled = *opts.Enabled
	}
	if opts.Disabled && enabled {
		class += " disabled"
	}

	iconClass := ""
	if opts.Icon != "" {
		iconClass = "glyphicon glyphicon-" + opts.Icon
		if opts.Type != "" && opts.Type != "link" {
			iconClass += " glyphicon-white"
		}
	}

	url := opts.URL
	if url == "" {
		url = "#"
	}

	return ButtonContext{
		Text:        text,
		URL:         url,
		ButtonClass: class,
		IconClass:   iconClass,
	}
}

// IconContext is the view model of the icon template.
type IconContext struct {
	IconClass string
}

// Icon builds the context for the glyphicon named icon.
func Icon(icon string, inverse bool) IconContext {
	class := "glyphicon glyphicon-" + icon
	if inverse {
		class += " glyphicon-white"
	}
	return IconContext{IconClass: class}
}

// ActiveURL returns output when url is the request path, and "" otherwise.
// An empty output defaults to "active".
func ActiveURL(requestPath, url, output string) string {
	if url != requestPath {
		return ""
	}
	if output == "" {
		return "active"
	}
	return output
}
