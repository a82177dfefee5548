package models

import (
	"fmt"
	"time"
)

// HoursPerDay is the number of rows of the hourly histogram.
const HoursPerDay = 24

// ValidHour reports whether hour is a histogram row index.
func ValidHour(hour int) bool {
	return hour >= 0 && hour < HoursPerDay
}

// HourBucketID returns the label used for an hour row, e.g. "hour-09".
func HourBucketID(hour int) string {
	if !ValidHour(hour) {
		panic(fmt.Sprintf("invalid hour bucket: %d", hour))
	}
	return fmt.Sprintf("hour-%02d", hour)
}

// LogDay truncates t to the start of its calendar day in t's own location.
func LogDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// FormatLogDay formats a log date as used in export keys, e.g. "20180308".
func FormatLogDay(t time.Time) string {
	return t.Format("20060102")
}
