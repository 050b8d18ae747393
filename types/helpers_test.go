package types

import (
	"fmt"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func expectSeq[T any](t *testing.T, expected, got []T) {
	t.Helper()
	exp, act := fmt.Sprint(expected), fmt.Sprint(got)
	if exp != act {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(exp, act, false)
		t.Fatalf("wrong sequence (expected %s but got %s)\n%s", exp, act, dmp.DiffPrettyText(diffs))
	}
}

// checkLinks walks the table in both directions and fails on any broken link.
func checkLinks[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if l.Len() == 0 {
		if l.table != nil && (l.head != none || l.tail != none) {
			t.Fatalf("empty list has head %d and tail %d", l.head, l.tail)
		}
		return
	}
	if l.head == none || l.tail == none {
		t.Fatalf("non-empty list has head %d and tail %d", l.head, l.tail)
	}
	for h, n := range l.table {
		if h >= l.nextHandle {
			t.Fatalf("handle %d was never issued (counter at %d)", h, l.nextHandle)
		}
		for _, link := range []handle{n.next, n.prev} {
			if _, found := l.table[link]; link != none && !found {
				t.Fatalf("node %d points at missing handle %d", h, link)
			}
		}
	}

	steps, prev := 0, none
	for h := l.head; ; steps++ {
		n := l.table[h]
		if n.prev != prev {
			t.Fatalf("node %d has prev %d (expected %d)", h, n.prev, prev)
		}
		if n.next == none {
			if h != l.tail {
				t.Fatalf("forward walk stopped at %d instead of tail %d", h, l.tail)
			}
			break
		}
		if steps > l.Len() {
			t.Fatal("forward walk does not terminate")
		}
		prev, h = h, n.next
	}
	if steps != l.Len()-1 {
		t.Fatalf("forward walk took %d steps (expected %d)", steps, l.Len()-1)
	}

	steps = 0
	h := l.tail
	for l.table[h].prev != none {
		h = l.table[h].prev
		steps++
		if steps > l.Len() {
			t.Fatal("backward walk does not terminate")
		}
	}
	if h != l.head {
		t.Fatalf("backward walk stopped at %d instead of head %d", h, l.head)
	}
	if steps != l.Len()-1 {
		t.Fatalf("backward walk took %d steps (expected %d)", steps, l.Len()-1)
	}
}
