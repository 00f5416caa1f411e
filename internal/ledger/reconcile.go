package ledger

import "fmt"

const (
	LabelWorked = "Worked"
	LabelBreak  = "Break"
)

// Annotation is the duration attached to a closing punch: OUT paired with the
// nearest preceding IN ("Worked"), BREAK_OUT with the nearest preceding
// BREAK_IN ("Break").
type Annotation struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// String renders the annotation the way the UI shows it, e.g. "Worked 8.00h".
func (a Annotation) String() string {
	return fmt.Sprintf("%s %.2fh", a.Label, a.Hours)
}

type AnnotatedEvent struct {
	Event
	Annotation *Annotation `json:"annotation,omitempty"`
}

// Reconcile annotates closing punches in a day's event list. Events must be
// sorted ascending by timestamp; opening punches never get annotations.
//
// A dangling OUT or BREAK_OUT (no preceding opener) is valid display state and
// simply stays unannotated. An IN is not consumed by the first OUT that pairs
// with it: consecutive OUTs each pair against the same last-seen IN. That
// matches the production behavior this replaces, dubious as it is for
// data-quality — see DESIGN.md before changing it.
//
// Implemented as a single forward scan with last-seen pointers, which is
// equivalent to the backward scan per closing event but O(n).
func Reconcile(dayEvents []Event) []AnnotatedEvent {
	out := make([]AnnotatedEvent, 0, len(dayEvents))

	var lastIn, lastBreakIn *Event
	for i := range dayEvents {
		ev := dayEvents[i]
		ann := AnnotatedEvent{Event: ev}

		switch ev.Kind {
		case KindIn:
			lastIn = &dayEvents[i]
		case KindBreakIn:
			lastBreakIn = &dayEvents[i]
		case KindOut:
			if lastIn != nil {
				ann.Annotation = &Annotation{
					Label: LabelWorked,
					Hours: ev.Timestamp.Sub(lastIn.Timestamp).Hours(),
				}
			}
		case KindBreakOut:
			if lastBreakIn != nil {
				ann.Annotation = &Annotation{
					Label: LabelBreak,
					Hours: ev.Timestamp.Sub(lastBreakIn.Timestamp).Hours(),
				}
			}
		}

		out = append(out, ann)
	}
	return out
}

// Totals sums the annotated durations of a day: worked hours from OUT pairs
// and break hours from BREAK_OUT pairs.
func Totals(annotated []AnnotatedEvent) (worked, breaks float64) {
	for _, ev := range annotated {
		if ev.Annotation == nil {
			continue
		}
		switch ev.Annotation.Label {
		case LabelWorked:
			worked += ev.Annotation.Hours
		case LabelBreak:
			breaks += ev.Annotation.Hours
		}
	}
	return worked, breaks
}
