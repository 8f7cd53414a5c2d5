package date

import "time"

// Weekdays lists the three-letter weekday abbreviations in planner order,
// Monday first. It is the canonical key set for anything keyed by weekday.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// StartOfWeek returns the Monday (start of day) of the week containing d.
// Weeks are Monday-based regardless of locale: a Sunday belongs to the week
// that started six days earlier.
func StartOfWeek(d Date) Date {
	weekday := d.Weekday() // time.Sunday = 0, ..., time.Saturday = 6
	offset := int(weekday - time.Monday)
	for offset < 0 {
		offset += 7
	}
	return d.Add(-offset)
}

// Week returns the seven contiguous days of the week containing d,
// Monday through Sunday.
func Week(d Date) [7]Date {
	var days [7]Date
	monday := StartOfWeek(d)
	for i := range days {
		days[i] = monday.Add(i)
	}
	return days
}

// ISOWeekNumber returns the ISO-8601 week number (1..53) of d: the week
// containing the year's first Thursday is week 1.
func ISOWeekNumber(d Date) int {
	_, week := d.ISOWeek()
	return week
}
