package app

import (
	"slices"
	"testing"

	"github.com/jsamuelsen11/command-engine/internal/ports"
)

func TestRequestQueue_DrainIsFIFO(t *testing.T) {
	t.Parallel()

	q := newRequestQueue(2)
	for i := range 5 {
		q.push(ports.Notification{Signal: ports.SignalUndoToIndexRequest, Index: i})
	}

	var got []int
	for _, n := range q.drain() {
		got = append(got, n.Index)
	}
	if want := []int{0, 1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("drain() indexes = %v, want %v", got, want)
	}
	if rest := q.drain(); len(rest) != 0 {
		t.Errorf("second drain() = %v, want empty", rest)
	}
}

func TestRequestQueue_PushNeverBlocks(t *testing.T) {
	t.Parallel()

	q := newRequestQueue(1)
	// Nobody reads wake; pushes past the first must coalesce instead of blocking.
	for range 100 {
		q.push(ports.Notification{Signal: ports.SignalRedoRequest})
	}

	select {
	case <-q.wake:
	default:
		t.Fatal("push did not signal wake")
	}
	if n := len(q.drain()); n != 100 {
		t.Errorf("drain() returned %d requests, want 100", n)
	}
}
