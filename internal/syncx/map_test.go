package syncx

import (
	"sync"
	"testing"
)

func TestMapLoadOrStore(t *testing.T) {
	var m Map[string, int]

	var wg sync.WaitGroup

	for i := range 10 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.LoadOrStore("visitor", i)
		}(i)
	}

	wg.Wait()

	first, ok := m.Load("visitor")
	if !ok {
		t.Fatalf("expected key to be stored")
	}

	actual, loaded := m.LoadOrStore("visitor", -1)
	if !loaded {
		t.Errorf("expected existing value to be loaded")
	}

	if e, g := first, actual; e != g {
		t.Errorf("actual: expected '%v', got '%v'", e, g)
	}

	m.Delete("visitor")

	if _, ok := m.Load("visitor"); ok {
		t.Errorf("expected key to be deleted")
	}

	count := 0
	m.Store("a", 1)
	m.Store("b", 2)
	m.Range(func(key string, value int) bool {
		count++
		return true
	})

	if e, g := 2, count; e != g {
		t.Errorf("count: expected '%v', got '%v'", e, g)
	}
}
