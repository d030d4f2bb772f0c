package corpus

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"textintel/internal/domain"
)

func entry(text string, vec ...float32) domain.Entry {
	return domain.Entry{Text: text, Vector: vec}
}

func TestAppend_AssignsSequenceNumbers(t *testing.T) {
	s := NewStore(2)

	size, err := s.Append([]domain.Entry{
		entry("first", 1, 0),
		entry("second", 0, 1),
	})
	if err != nil {
		t.Fatal(err)
	}
	if size != 2 {
		t.Errorf("expected size 2, got %d", size)
	}

	size, err = s.Append([]domain.Entry{entry("third", 1, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if size != 3 {
		t.Errorf("expected size 3, got %d", size)
	}

	snap := s.Snapshot()
	for i, e := range snap {
		if e.Seq != uint64(i) {
			t.Errorf("entry %d has seq %d", i, e.Seq)
		}
	}
}

func TestAppend_DimensionMismatchIsAtomic(t *testing.T) {
	s := NewStore(3)

	_, err := s.Append([]domain.Entry{
		entry("good", 1, 2, 3),
		entry("bad", 1, 2),
	})
	if !errors.Is(err, domain.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if s.Size() != 0 {
		t.Errorf("rejected batch must not be partially applied, size=%d", s.Size())
	}
}

func TestSnapshot_DoesNotSeeLaterAppends(t *testing.T) {
	s := NewStore(1)
	if _, err := s.Append([]domain.Entry{entry("a", 1)}); err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot()

	if _, err := s.Append([]domain.Entry{entry("b", 2)}); err != nil {
		t.Fatal(err)
	}
	if len(snap) != 1 {
		t.Errorf("snapshot grew after append: len=%d", len(snap))
	}
	if snap[0].Text != "a" {
		t.Errorf("snapshot entry changed: %q", snap[0].Text)
	}
	if s.Size() != 2 {
		t.Errorf("expected size 2, got %d", s.Size())
	}
}

func TestAppend_Concurrent(t *testing.T) {
	const writers = 8
	const perWriter = 50

	s := NewStore(1)
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := s.Append([]domain.Entry{
					entry(fmt.Sprintf("w%d-%d", w, i), float32(i)),
				})
				if err != nil {
					t.Error(err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	if s.Size() != writers*perWriter {
		t.Fatalf("expected %d entries, got %d", writers*perWriter, s.Size())
	}

	seen := make(map[uint64]bool)
	for _, e := range s.Snapshot() {
		if seen[e.Seq] {
			t.Fatalf("duplicate seq %d", e.Seq)
		}
		seen[e.Seq] = true
	}
	for seq := uint64(0); seq < writers*perWriter; seq++ {
		if !seen[seq] {
			t.Fatalf("missing seq %d", seq)
		}
	}
}

func TestSnapshot_SafeDuringConcurrentAppends(t *testing.T) {
	s := NewStore(1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if _, err := s.Append([]domain.Entry{entry("x", float32(i))}); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	for i := 0; i < 200; i++ {
		snap := s.Snapshot()
		for j, e := range snap {
			if e.Seq != uint64(j) {
				t.Fatalf("snapshot not a consistent prefix: index %d has seq %d", j, e.Seq)
			}
			if e.Vector == nil {
				t.Fatal("snapshot observed a half-written entry")
			}
		}
	}
	<-done
}
