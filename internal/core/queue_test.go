package core

import "testing"

func TestQueueFIFO(t *testing.T) {
	var q Queue[int]

	if _, ok := q.Peek(); ok {
		t.Fatal("Peek() on empty queue should report !ok")
	}

	for i := 0; i < 20; i++ {
		q.Push(i)
	}
	if q.Len() != 20 {
		t.Fatalf("Len() = %d, expected 20", q.Len())
	}

	for i := 0; i < 20; i++ {
		head, _ := q.Peek()
		v, ok := q.Pop()
		if !ok || v != i || head != i {
			t.Fatalf("Pop() = %d (ok=%v), expected %d", v, ok, i)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Error("Pop() on drained queue should report !ok")
	}
}

func TestQueueWrapAround(t *testing.T) {
	var q Queue[int]

	// Interleave pushes and pops so the head walks around the ring.
	next := 0
	want := 0
	for round := 0; round < 50; round++ {
		q.Push(next)
		next++
		q.Push(next)
		next++
		v, _ := q.Pop()
		if v != want {
			t.Fatalf("round %d: Pop() = %d, expected %d", round, v, want)
		}
		want++
	}

	var seen []int
	q.Each(func(v int) { seen = append(seen, v) })
	if len(seen) != q.Len() {
		t.Fatalf("Each visited %d items, expected %d", len(seen), q.Len())
	}
	for i, v := range seen {
		if v != want+i {
			t.Errorf("Each()[%d] = %d, expected %d", i, v, want+i)
		}
	}
}
