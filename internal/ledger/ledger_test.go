package ledger_test

import (
	"testing"
	"time"

	"github.com/ganeshsahu2020/SmileCastle/internal/ledger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func event(kind ledger.Kind, ts time.Time) ledger.Event {
	return ledger.Event{
		ID:        uuid.New().String(),
		SubjectID: "emp-1",
		Kind:      kind,
		Timestamp: ts,
	}
}

func TestAggregate(t *testing.T) {
	utc := time.UTC

	t.Run("empty input yields empty hierarchy", func(t *testing.T) {
		h := ledger.Aggregate(nil, utc)
		assert.Empty(t, h)
		assert.Empty(t, h.Flatten())
	})

	t.Run("covers every event exactly once", func(t *testing.T) {
		events := []ledger.Event{
			event(ledger.KindIn, time.Date(2025, time.January, 7, 9, 0, 0, 0, utc)),
			event(ledger.KindOut, time.Date(2025, time.January, 7, 17, 0, 0, 0, utc)),
			event(ledger.KindIn, time.Date(2025, time.February, 8, 9, 0, 0, 0, utc)),
			event(ledger.KindIn, time.Date(2026, time.January, 1, 9, 0, 0, 0, utc)),
		}

		h := ledger.Aggregate(events, utc)

		flat := h.Flatten()
		assert.Len(t, flat, len(events))

		seen := map[string]bool{}
		for _, ev := range flat {
			assert.False(t, seen[ev.ID], "event bucketed twice: %s", ev.ID)
			seen[ev.ID] = true
		}
		for _, ev := range events {
			assert.True(t, seen[ev.ID], "event missing from hierarchy: %s", ev.ID)
		}
	})

	t.Run("week of month is ceil(day/7)", func(t *testing.T) {
		events := []ledger.Event{
			event(ledger.KindIn, time.Date(2025, time.March, 7, 9, 0, 0, 0, utc)),
			event(ledger.KindIn, time.Date(2025, time.March, 8, 9, 0, 0, 0, utc)),
			event(ledger.KindIn, time.Date(2025, time.March, 31, 9, 0, 0, 0, utc)),
		}

		h := ledger.Aggregate(events, utc)

		assert.Len(t, h, 1)
		assert.Equal(t, 2025, h[0].Year)
		assert.Len(t, h[0].Months, 1)
		assert.Equal(t, "March", h[0].Months[0].Name)

		weeks := h[0].Months[0].Weeks
		assert.Len(t, weeks, 3)
		assert.Equal(t, 1, weeks[0].Week) // the 7th
		assert.Equal(t, 2, weeks[1].Week) // the 8th
		assert.Equal(t, 5, weeks[2].Week) // the 31st
	})

	t.Run("year and month boundaries never interleave", func(t *testing.T) {
		events := []ledger.Event{
			event(ledger.KindIn, time.Date(2025, time.December, 31, 23, 0, 0, 0, utc)),
			event(ledger.KindOut, time.Date(2026, time.January, 1, 7, 0, 0, 0, utc)),
		}

		h := ledger.Aggregate(events, utc)

		assert.Len(t, h, 2)
		assert.Equal(t, 2025, h[0].Year)
		assert.Equal(t, "December", h[0].Months[0].Name)
		assert.Equal(t, 2026, h[1].Year)
		assert.Equal(t, "January", h[1].Months[0].Name)
		assert.Len(t, h[0].Months[0].Weeks[0].Days[0].Events, 1)
		assert.Len(t, h[1].Months[0].Weeks[0].Days[0].Events, 1)
	})

	t.Run("grouping respects the supplied location", func(t *testing.T) {
		// 2025-06-02 02:00 UTC is still 2025-06-01 in UTC-5.
		chicago := time.FixedZone("UTC-5", -5*3600)
		ev := event(ledger.KindIn, time.Date(2025, time.June, 2, 2, 0, 0, 0, utc))

		h := ledger.Aggregate([]ledger.Event{ev}, chicago)

		assert.Equal(t, "2025-06-01", h[0].Months[0].Weeks[0].Days[0].Date)
	})

	t.Run("events keep relative input order within a day", func(t *testing.T) {
		day := time.Date(2025, time.May, 5, 0, 0, 0, 0, utc)
		events := []ledger.Event{
			event(ledger.KindIn, day.Add(9*time.Hour)),
			event(ledger.KindBreakIn, day.Add(12*time.Hour)),
			event(ledger.KindBreakOut, day.Add(12*time.Hour+30*time.Minute)),
			event(ledger.KindOut, day.Add(17*time.Hour)),
		}

		h := ledger.Aggregate(events, utc)

		got := h[0].Months[0].Weeks[0].Days[0].Events
		assert.Len(t, got, 4)
		for i, ev := range got {
			assert.Equal(t, events[i].ID, ev.ID)
		}
	})
}

func TestKindValid(t *testing.T) {
	assert.True(t, ledger.KindIn.Valid())
	assert.True(t, ledger.KindBreakOut.Valid())
	assert.False(t, ledger.Kind("LUNCH").Valid())
	assert.False(t, ledger.Kind("").Valid())
}
