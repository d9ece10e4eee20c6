package visualize

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/model"
	"github.com/katalvlaran/wfc/observer"
	"github.com/katalvlaran/wfc/rules"
	"github.com/katalvlaran/wfc/socket"
)

func uniformSidesFor(s socket.SocketID) map[grid.Direction][]socket.SocketID {
	return map[grid.Direction][]socket.SocketID{
		grid.North: {s}, grid.East: {s}, grid.South: {s}, grid.West: {s},
	}
}

func TestRecorderTracksRemainingAcrossEvents(t *testing.T) {
	rec := NewRecorder(2, 2)
	rec.Notify(observer.Event{Kind: observer.Reset, Attempt: 0})
	rec.Notify(observer.Event{Kind: observer.VariantEliminated, Cell: 1, Variant: 0})
	rec.Notify(observer.Event{Kind: observer.CellDecided, Cell: 1, Variant: 1})
	rec.Notify(observer.Event{Kind: observer.Done, Attempt: 0})

	if got := rec.FinalVariants(); got[1] != 1 {
		t.Fatalf("FinalVariants = %v; want cell 1 -> variant 1", got)
	}
	if len(rec.total) == 0 {
		t.Fatal("expected at least one recorded step")
	}
	last := rec.total[len(rec.total)-1]
	if last != 3 { // cell0 still at 2 possibilities, cell1 narrowed to 1
		t.Fatalf("final total remaining = %d; want 3", last)
	}
}

func TestRecorderResetDiscardsPriorAttempt(t *testing.T) {
	rec := NewRecorder(1, 2)
	rec.Notify(observer.Event{Kind: observer.Reset, Attempt: 0})
	rec.Notify(observer.Event{Kind: observer.CellDecided, Cell: 0, Variant: 0})
	rec.Notify(observer.Event{Kind: observer.Reset, Attempt: 1})

	if len(rec.FinalVariants()) != 0 {
		t.Fatalf("FinalVariants after reset = %v; want empty", rec.FinalVariants())
	}
	if rec.Attempt() != 1 {
		t.Fatalf("Attempt = %d; want 1", rec.Attempt())
	}
}

func TestRenderProducesHTML(t *testing.T) {
	rec := NewRecorder(2, 2)
	rec.Notify(observer.Event{Kind: observer.Reset, Attempt: 0})
	rec.Notify(observer.Event{Kind: observer.VariantEliminated, Cell: 0, Variant: 1})
	rec.Notify(observer.Event{Kind: observer.CellDecided, Cell: 0, Variant: 0})
	rec.Notify(observer.Event{Kind: observer.VariantEliminated, Cell: 1, Variant: 0})
	rec.Notify(observer.Event{Kind: observer.CellDecided, Cell: 1, Variant: 1})
	rec.Notify(observer.Event{Kind: observer.Done, Attempt: 0})

	var buf bytes.Buffer
	labels := []VariantLabel{
		{Variant: 0, Name: "black", Weight: 1},
		{Variant: 1, Name: "white", Weight: 3},
	}
	if err := rec.Render(&buf, labels); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<html") {
		n := len(out)
		if n > 200 {
			n = 200
		}
		t.Fatalf("Render output doesn't look like HTML: %q", out[:n])
	}
}

func TestLabelsFromRulesNamesByAuthoredModel(t *testing.T) {
	rb, err := rules.NewCartesian2D(2, 2)
	if err != nil {
		t.Fatalf("NewCartesian2D: %v", err)
	}
	black := rb.Sockets.CreateSocket()
	white := rb.Sockets.CreateSocket()
	rb.Sockets.AddConnection(black, white)

	if _, err := rb.Models.AddModel(model.Model{Name: "black", Sides: uniformSidesFor(black)}); err != nil {
		t.Fatalf("AddModel black: %v", err)
	}
	if _, err := rb.Models.AddModel(model.Model{Name: "white", Sides: uniformSidesFor(white)}); err != nil {
		t.Fatalf("AddModel white: %v", err)
	}
	r, err := rb.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	labels := LabelsFromRules(r, []string{"black", "white"})
	if len(labels) != 2 {
		t.Fatalf("labels = %v; want 2", labels)
	}
	for _, l := range labels {
		want := []string{"black", "white"}[l.Variant]
		if l.Name != want {
			t.Errorf("labels[%d].Name = %q; want %q", l.Variant, l.Name, want)
		}
	}
}
