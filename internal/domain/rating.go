package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Rating is the reviewer verdict for a translation or a matched standard.
// The zero value means the slot has not been rated yet and is encoded as JSON null.
type Rating string

const (
	RatingNone   Rating = ""
	RatingWorst  Rating = "Worst"
	RatingMiddle Rating = "Middle"
	RatingBest   Rating = "Best"
)

// Ratings lists the selectable ratings in display order.
var Ratings = []Rating{RatingWorst, RatingMiddle, RatingBest}

// ParseRating accepts the rating names case-insensitively.
func ParseRating(s string) (Rating, error) {
	for _, r := range Ratings {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return RatingNone, fmt.Errorf("invalid rating: %q (must be one of Worst, Middle, Best)", s)
}

func (r Rating) IsSet() bool {
	return r != RatingNone
}

func (r Rating) Valid() bool {
	switch r {
	case RatingNone, RatingWorst, RatingMiddle, RatingBest:
		return true
	default:
		return false
	}
}

func (r Rating) MarshalJSON() ([]byte, error) {
	if r == RatingNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(r))
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = RatingNone
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("rating must be a string or null: %w", err)
	}
	if s == "" {
		*r = RatingNone
		return nil
	}
	parsed, err := ParseRating(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
