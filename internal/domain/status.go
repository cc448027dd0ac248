package domain

import (
	"encoding/json"
	"fmt"
)

// Status is the completion state of one sample's annotations.
type Status int

const (
	StatusNotStarted Status = iota
	StatusPartial
	StatusDone
)

// Badge holds the display attributes of a status.
type Badge struct {
	Label      string `json:"label"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusPartial:
		return "partial"
	case StatusDone:
		return "done"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

func (s Status) Badge() Badge {
	switch s {
	case StatusPartial:
		return Badge{Label: "Partial", Background: "#fef08a", Foreground: "#854d0e"}
	case StatusDone:
		return Badge{Label: "Done", Background: "#bbf7d0", Foreground: "#166534"}
	default:
		return Badge{Label: "Not Started", Background: "#e5e7eb", Foreground: "#4b5563"}
	}
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case "not-started":
		return StatusNotStarted, nil
	case "partial":
		return StatusPartial, nil
	case "done":
		return StatusDone, nil
	default:
		return StatusNotStarted, fmt.Errorf("invalid status: %q (must be one of not-started, partial, done)", s)
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
