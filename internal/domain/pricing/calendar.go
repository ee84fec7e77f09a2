package pricing

import "time"

const dateKeyLayout = "2006-01-02"

// ProjectFinishDate advances cycleDays working days from start, skipping
// weekends and the configured holiday set. The start day itself does not
// count as a production day.
func (e *Engine) ProjectFinishDate(start time.Time, cycleDays int) time.Time {
	day := start
	for remaining := cycleDays; remaining > 0; {
		day = day.AddDate(0, 0, 1)
		if e.isWorkday(day) {
			remaining--
		}
	}
	return day
}

func (e *Engine) isWorkday(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	_, holiday := e.tables.Holidays[t.Format(dateKeyLayout)]
	return !holiday
}
