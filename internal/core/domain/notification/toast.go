package notification

import "time"

// Severity drives the color of a toast.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Position string

const (
	PositionTop    Position = "top"
	PositionMiddle Position = "middle"
	PositionBottom Position = "bottom"
)

// Toast is a transient message shown on top of the current screen.
type Toast struct {
	Severity Severity      `json:"severity"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"-"`
	Position Position      `json:"position"`
}

// DurationMillis is the display time in the unit UI toolkits expect.
func (t Toast) DurationMillis() int64 {
	return t.Duration.Milliseconds()
}
