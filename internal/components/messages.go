package components

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Message levels, in the order of severity.
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Message is a one-time notification queued for the user.
type Message struct {
	Level string
	Text  string
	Tags  string // Extra CSS classes
}

// Alert is the view model of one rendered message.
type Alert struct {
	ID      string
	Heading string
	Text    string
	Class   string
}

// Messages converts queued messages into alerts. Error messages use the
// alert-danger class; debug messages render as info.
func Messages(msgs []Message) []Alert {
	title := cases.Title(language.English)

	alerts := make([]Alert, 0, len(msgs))
	for _, m := range msgs {
		level := strings.ToLower(m.Level)
		if level == "" {
			level = LevelInfo
		}

		class := "alert alert-" + alertLevel(level)
		if m.Tags != "" {
			class += " " + m.Tags
		}

		alerts = append(alerts, Alert{
			ID:      "alert-" + uuid.NewString(),
			Heading: title.String(level),
			Text:    m.Text,
			Class:   class,
		})
	}
	return alerts
}

func alertLevel(level string) string {
	switch level {
	case LevelError:
		return "danger"
	case LevelDebug:
		return LevelInfo
	default:
		return level
	}
}
