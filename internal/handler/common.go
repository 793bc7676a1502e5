// Package handler exposes the HTTP handlers of the booking directory.
// Handlers parse input, query the repositories and assemble the JSON
// view-model for each route; rendering is left to the client.
package handler

import (
	"time"

	"github.com/labstack/echo/v4"
)

// startTimeLayout is how show start times are rendered in every view:
// MM/DD/YYYY, HH:MM:SS in 24-hour time.
const startTimeLayout = "01/02/2006, 15:04:05"

// startTimeInputLayouts are the accepted formats for the start_time
// form field on show creation, tried in order.
var startTimeInputLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// parseStartTime parses a submitted start_time value.
func parseStartTime(s string) (time.Time, error) {
	var err error
	for _, layout := range startTimeInputLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// formGenres extracts the repeated genres field from a form
// submission.  Returns an empty slice when the field is absent.
func formGenres(c echo.Context) []string {
	params, err := c.FormParams()
	if err != nil {
		return []string{}
	}
	genres := params["genres"]
	if genres == nil {
		return []string{}
	}
	return genres
}
