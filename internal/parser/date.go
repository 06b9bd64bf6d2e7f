// Package parser turns natural language day expressions into canonical
// table dates.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/habitgrid/internal/errors"
	"github.com/manav03panchal/habitgrid/internal/model"
)

// ParseDay parses a day expression like "today", "yesterday",
// "last monday", or "2024-01-05" into canonical YYYY-MM-DD form.
// An empty input means today.
func ParseDay(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "today") {
		return model.Day(now), nil
	}

	// Exact canonical form short-circuits the natural language parser.
	if t, err := time.Parse(model.DayFormat, input); err == nil {
		return model.Day(t), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return "", errors.NewUserErrorWithField("when", input,
			"Could not understand that day",
			"Try forms like 'yesterday', 'last monday', or '2024-01-05'")
	}
	return model.Day(result.Time), nil
}
