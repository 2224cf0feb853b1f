package layout

import (
	"asciimaid/diagram"
	"testing"
)

func newSequence(participants []string, messages [][3]string) *diagram.Diagram {
	d := diagram.NewSequence()
	for _, id := range participants {
		d.AddParticipant(diagram.NewParticipant(id, ""))
	}
	for i, m := range messages {
		d.Messages = append(d.Messages, diagram.Message{
			From: m[0], To: m[1], Label: m[2], Type: diagram.MessageSync, Sequence: i,
		})
	}
	return d
}

func TestSequenceLayoutBasic(t *testing.T) {
	d := newSequence(
		[]string{"User", "Server", "Database"},
		[][3]string{
			{"User", "Server", "request"},
			{"Server", "Database", "query"},
			{"Database", "Server", "result"},
			{"Server", "User", "response"},
		})

	NewSequenceLayout(DefaultSequenceOptions()).Layout(d)

	// Check participants are positioned horizontally
	if d.Participants[0].X != 5 {
		t.Errorf("First participant should start at left margin, got X=%d", d.Participants[0].X)
	}
	for i := 1; i < len(d.Participants); i++ {
		prev, cur := d.Participants[i-1], d.Participants[i]
		if cur.X != prev.X+prev.Width+15 {
			t.Errorf("participant %s at X=%d, want %d", cur.ID, cur.X, prev.X+prev.Width+15)
		}
		if cur.Y != 2 {
			t.Errorf("All participants should be at the top margin, %s at Y=%d", cur.ID, cur.Y)
		}
	}

	// Messages go top to bottom in insertion order
	for i, m := range d.Messages {
		if want := 8 + i*4; m.Y != want {
			t.Errorf("message %d (%s) at row %d, want %d", i, m.Label, m.Y, want)
		}
	}
}

func TestSequenceLayout_InsertionOrderNotSequenceField(t *testing.T) {
	d := newSequence([]string{"Alice", "Bob"}, [][3]string{
		{"Alice", "Bob", "hi"},
		{"Bob", "Alice", "bye"},
	})
	// A misleading sequence index must not reorder rows.
	d.Messages[0].Sequence = 10
	d.Messages[1].Sequence = 1

	NewSequenceLayout(DefaultSequenceOptions()).Layout(d)

	if d.Messages[0].Y >= d.Messages[1].Y {
		t.Errorf("hi at row %d should be above bye at row %d", d.Messages[0].Y, d.Messages[1].Y)
	}
}

func TestSequenceLayout_Empty(t *testing.T) {
	d := diagram.NewSequence()
	NewSequenceLayout(DefaultSequenceOptions()).Layout(d)
	if len(d.Participants) != 0 || len(d.Messages) != 0 {
		t.Error("empty diagram should stay empty")
	}
}

func TestSequenceLayout_MessagesWithUnknownParticipants(t *testing.T) {
	d := newSequence([]string{"A"}, [][3]string{{"A", "Ghost", "boo"}, {"A", "A", "self"}})
	NewSequenceLayout(DefaultSequenceOptions()).Layout(d)

	if d.Messages[0].Y != 8 || d.Messages[1].Y != 12 {
		t.Errorf("rows = %d, %d; want 8, 12", d.Messages[0].Y, d.Messages[1].Y)
	}
}
