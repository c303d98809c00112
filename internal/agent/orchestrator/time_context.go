package orchestrator

import (
	"fmt"
	"time"
)

const timeContextFormat = "Monday, January 02, 2006, 03:04 PM MST"

// buildTimeContext renders the current-time block injected into the system
// prompt so the model can resolve relative dates itself.
func buildTimeContext(timezone string, now time.Time) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return fmt.Sprintf("Current date and time: %s", now.In(loc).Format(timeContextFormat))
}
