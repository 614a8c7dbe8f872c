package journal

import "time"

// MonthBuckets groups entries by local day-of-month for the given month.
// Matching is by exact year/month/day; the hour component never moves an
// entry between days.
func MonthBuckets(entries []*Entry, year int, month time.Month) map[int][]*Entry {
	buckets := make(map[int][]*Entry)
	for _, e := range entries {
		if e == nil {
			continue
		}
		d := e.Day()
		if d.Year() == year && d.Month() == month {
			buckets[d.Day()] = append(buckets[d.Day()], e)
		}
	}
	return buckets
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return first.AddDate(0, 1, -1).Day()
}
