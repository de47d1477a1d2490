package http

import "time"

// dateLayout is the calendar-day format used by the console for order,
// delivery and hire dates.
const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
