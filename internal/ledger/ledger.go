// Package ledger turns a flat stream of punch events into the views the rest
// of the application renders: a year/month/week/day hierarchy and per-day
// worked/break duration annotations. It is pure and storage-independent; the
// punch and report services map their rows into Event values at the boundary.
package ledger

import (
	"time"
)

type Kind string

const (
	KindIn       Kind = "IN"
	KindOut      Kind = "OUT"
	KindBreakIn  Kind = "BREAK_IN"
	KindBreakOut Kind = "BREAK_OUT"
)

// Valid reports whether k is one of the four punch kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindIn, KindOut, KindBreakIn, KindBreakOut:
		return true
	default:
		return false
	}
}

// Event is an immutable punch record. Timestamp is when the punch logically
// occurred, which is not necessarily when the row was inserted.
type Event struct {
	ID        string
	SubjectID string
	Kind      Kind
	Timestamp time.Time
}

// Hierarchy is the nested year → month → week-of-month → day grouping, in
// first-appearance order of the input. Callers supply events pre-sorted by
// timestamp, so appearance order is chronological order.
type Hierarchy []YearBucket

type YearBucket struct {
	Year   int           `json:"year"`
	Months []MonthBucket `json:"months"`
}

type MonthBucket struct {
	Name  string       `json:"name"`
	Weeks []WeekBucket `json:"weeks"`
}

type WeekBucket struct {
	// Week of the month: week 1 = days 1-7, week 2 = days 8-14, and so on.
	// Deliberately not an ISO week; week boundaries never cross a month.
	Week int         `json:"week"`
	Days []DayBucket `json:"days"`
}

type DayBucket struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Events []Event `json:"events"`
}

// Aggregate groups events into a Hierarchy using calendar fields in loc
// (time.Local when nil). It never sorts: events keep their relative input
// order within each day bucket. Empty input yields an empty hierarchy.
func Aggregate(events []Event, loc *time.Location) Hierarchy {
	if loc == nil {
		loc = time.Local
	}

	var h Hierarchy
	for _, ev := range events {
		ts := ev.Timestamp.In(loc)
		year := ts.Year()
		month := ts.Month().String()
		week := (ts.Day() + 6) / 7 // ceil(day/7) without floats
		day := ts.Format("2006-01-02")

		yb := h.year(year)
		mb := yb.month(month)
		wb := mb.week(week)
		db := wb.day(day)
		db.Events = append(db.Events, ev)
	}
	return h
}

func (h *Hierarchy) year(year int) *YearBucket {
	for i := range *h {
		if (*h)[i].Year == year {
			return &(*h)[i]
		}
	}
	*h = append(*h, YearBucket{Year: year})
	return &(*h)[len(*h)-1]
}

func (y *YearBucket) month(name string) *MonthBucket {
	for i := range y.Months {
		if y.Months[i].Name == name {
			return &y.Months[i]
		}
	}
	y.Months = append(y.Months, MonthBucket{Name: name})
	return &y.Months[len(y.Months)-1]
}

func (m *MonthBucket) week(week int) *WeekBucket {
	for i := range m.Weeks {
		if m.Weeks[i].Week == week {
			return &m.Weeks[i]
		}
	}
	m.Weeks = append(m.Weeks, WeekBucket{Week: week})
	return &m.Weeks[len(m.Weeks)-1]
}

func (w *WeekBucket) day(date string) *DayBucket {
	for i := range w.Days {
		if w.Days[i].Date == date {
			return &w.Days[i]
		}
	}
	w.Days = append(w.Days, DayBucket{Date: date})
	return &w.Days[len(w.Days)-1]
}

// Flatten returns every event in the hierarchy in bucket order.
func (h Hierarchy) Flatten() []Event {
	var out []Event
	for _, y := range h {
		for _, m := range y.Months {
			for _, w := range m.Weeks {
				for _, d := range w.Days {
					out = append(out, d.Events...)
				}
			}
		}
	}
	return out
}
