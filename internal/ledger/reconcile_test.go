package ledger_test

import (
	"testing"
	"time"

	"github.com/ganeshsahu2020/SmileCastle/internal/ledger"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.April, 14, hour, min, 0, 0, time.UTC)
}

func TestReconcile(t *testing.T) {
	t.Run("out pairs with preceding in", func(t *testing.T) {
		events := []ledger.Event{
			event(ledger.KindIn, at(9, 0)),
			event(ledger.KindOut, at(17, 0)),
		}

		got := ledger.Reconcile(events)

		assert.Len(t, got, 2)
		assert.Nil(t, got[0].Annotation)
		if assert.NotNil(t, got[1].Annotation) {
			assert.Equal(t, "Worked 8.00h", got[1].Annotation.String())
			assert.InDelta(t, 8.0, got[1].Annotation.Hours, 1e-9)
		}
	})

	t.Run("break out pairs with preceding break in", func(t *testing.T) {
		events := []ledger.Event{
			event(ledger.KindBreakIn, at(12, 0)),
			event(ledger.KindBreakOut, at(12, 30)),
		}

		got := ledger.Reconcile(events)

		if assert.NotNil(t, got[1].Annotation) {
			assert.Equal(t, "Break 0.50h", got[1].Annotation.String())
		}
	})

	t.Run("opening punches are never annotated", func(t *testing.T) {
		events := []ledger.Event{
			event(ledger.KindIn, at(9, 0)),
			event(ledger.KindBreakIn, at(12, 0)),
			event(ledger.KindBreakOut, at(12, 30)),
			event(ledger.KindOut, at(17, 0)),
		}

		got := ledger.Reconcile(events)

		assert.Nil(t, got[0].Annotation)
		assert.Nil(t, got[1].Annotation)
		assert.NotNil(t, got[2].Annotation)
		assert.NotNil(t, got[3].Annotation)
	})

	t.Run("dangling out is not an error", func(t *testing.T) {
		events := []ledger.Event{
			event(ledger.KindOut, at(9, 0)),
		}

		got := ledger.Reconcile(events)

		assert.Len(t, got, 1)
		assert.Nil(t, got[0].Annotation)
	})

	t.Run("breaks do not interfere with work pairing", func(t *testing.T) {
		events := []ledger.Event{
			event(ledger.KindIn, at(9, 0)),
			event(ledger.KindBreakIn, at(12, 0)),
			event(ledger.KindBreakOut, at(13, 0)),
			event(ledger.KindOut, at(17, 0)),
		}

		got := ledger.Reconcile(events)

		// OUT still pairs against IN@09:00, not the break punches.
		assert.InDelta(t, 8.0, got[3].Annotation.Hours, 1e-9)
		assert.InDelta(t, 1.0, got[2].Annotation.Hours, 1e-9)
	})

	t.Run("consecutive outs re-use the same in", func(t *testing.T) {
		events := []ledger.Event{
			event(ledger.KindIn, at(9, 0)),
			event(ledger.KindOut, at(12, 0)),
			event(ledger.KindOut, at(17, 0)),
		}

		got := ledger.Reconcile(events)

		assert.InDelta(t, 3.0, got[1].Annotation.Hours, 1e-9)
		assert.InDelta(t, 8.0, got[2].Annotation.Hours, 1e-9)
	})

	t.Run("empty day", func(t *testing.T) {
		assert.Empty(t, ledger.Reconcile(nil))
	})
}

func TestTotals(t *testing.T) {
	events := []ledger.Event{
		event(ledger.KindIn, at(9, 0)),
		event(ledger.KindBreakIn, at(12, 0)),
		event(ledger.KindBreakOut, at(12, 30)),
		event(ledger.KindOut, at(17, 0)),
	}

	worked, breaks := ledger.Totals(ledger.Reconcile(events))

	assert.InDelta(t, 8.0, worked, 1e-9)
	assert.InDelta(t, 0.5, breaks, 1e-9)
}
