package observe

import (
	"sync"
	"testing"
)

func TestValueGetSet(t *testing.T) {
	v := NewValue(1)
	if got := v.Get(); got != 1 {
		t.Fatalf("Get() = %d, want 1", got)
	}

	v.Set(5)
	if got := v.Get(); got != 5 {
		t.Errorf("Get() after Set(5) = %d, want 5", got)
	}
}

func TestValueSubscribeOrder(t *testing.T) {
	v := NewValue("")
	var calls []string

	v.Subscribe(func(s string) { calls = append(calls, "a:"+s) })
	v.Subscribe(func(s string) { calls = append(calls, "b:"+s) })

	v.Set("x")

	want := []string{"a:x", "b:x"}
	if len(calls) != len(want) {
		t.Fatalf("got %d calls, want %d", len(calls), len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestValueCancel(t *testing.T) {
	v := NewValue(0)
	count := 0
	cancel := v.Subscribe(func(int) { count++ })

	v.Set(1)
	cancel()
	cancel() // idempotent
	v.Set(2)

	if count != 1 {
		t.Errorf("subscriber called %d times, want 1", count)
	}
	if n := v.Subscribers(); n != 0 {
		t.Errorf("Subscribers() = %d, want 0", n)
	}
}

func TestValueUpdate(t *testing.T) {
	v := NewValue(10)
	var seen int
	v.Subscribe(func(n int) { seen = n })

	v.Update(func(n int) int { return n * 2 })

	if v.Get() != 20 || seen != 20 {
		t.Errorf("Update: value=%d seen=%d, want 20/20", v.Get(), seen)
	}
}

func TestValueSubscriberMayRead(t *testing.T) {
	v := NewValue(0)
	var inner int
	v.Subscribe(func(int) { inner = v.Get() })

	v.Set(3)

	if inner != 3 {
		t.Errorf("Get() inside subscriber = %d, want 3", inner)
	}
}

func TestValueConcurrentWrites(t *testing.T) {
	v := NewValue(0)
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.Update(func(n int) int { return n + 1 })
		}()
	}
	wg.Wait()

	if got := v.Get(); got != 50 {
		t.Errorf("Get() = %d, want 50", got)
	}
}
