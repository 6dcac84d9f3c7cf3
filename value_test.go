package lazy_test

import (
	"errors"
	"testing"

	lazy "github.com/probablyarth/lazy-go"
)

func TestValueComputesOnce(t *testing.T) {
	calls := 0
	v := lazy.NewValue[int, lazy.LazyKind](func() int {
		calls++
		return 1
	})

	if v.Computed() {
		t.Fatal("new value should be uncomputed")
	}
	for range 3 {
		if got := v.Get(); got != 1 {
			t.Fatalf("got %d, want 1", got)
		}
	}
	if calls != 1 {
		t.Fatalf("fn called %d times, want 1", calls)
	}
}

func TestValueIdentity(t *testing.T) {
	v := lazy.NewValue[*point, lazy.LazyKind](func() *point { return &point{X: 1} })

	if v.Get() != v.Get() {
		t.Fatal("repeated reads returned different pointers")
	}
}

func TestValueInvalidate(t *testing.T) {
	calls := 0
	v := lazy.NewValue[int, lazy.CachedKind](func() int {
		calls++
		return calls * 10
	})

	// Invalidating before the first read is a no-op.
	v.Invalidate()
	if got := v.Get(); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}

	lazy.InvalidateCached(v)
	lazy.InvalidateCached(v)
	if v.Computed() {
		t.Fatal("value should be uncomputed after invalidation")
	}
	if _, ok := v.Peek(); ok {
		t.Fatal("Peek reported a value after invalidation")
	}

	if got := v.Get(); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
	if got := v.Get(); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
	if calls != 2 {
		t.Fatalf("fn called %d times, want 2", calls)
	}
}

func TestValuePeek(t *testing.T) {
	v := lazy.NewValue[string, lazy.LazyKind](func() string { return "x" })

	if _, ok := v.Peek(); ok {
		t.Fatal("Peek computed the value")
	}
	v.Get()
	if got, ok := v.Peek(); !ok || got != "x" {
		t.Fatalf("got %q, %v; want %q, true", got, ok, "x")
	}
}

func TestValueErrorNotCached(t *testing.T) {
	errBoom := errors.New("boom")
	calls := 0
	v := lazy.NewValueE[string, lazy.LazyKind](func() (string, error) {
		calls++
		if calls == 1 {
			return "", errBoom
		}
		return "ok", nil
	})

	if _, err := v.GetE(); !errors.Is(err, errBoom) {
		t.Fatalf("got err=%v, want %v", err, errBoom)
	}
	if v.Computed() {
		t.Fatal("failed computation was cached")
	}

	val, err := v.GetE()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != "ok" {
		t.Fatalf("got %q, want %q", val, "ok")
	}
}

func TestValueGetPanicsOnError(t *testing.T) {
	v := lazy.NewValueE[int, lazy.LazyKind](func() (int, error) {
		return 0, errors.New("kaboom")
	})

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	v.Get()
}

type report struct {
	rows  []int
	total lazy.Value[int, lazy.LazyKind]
	sums  int
}

func (r *report) sum() int {
	r.sums++
	n := 0
	for _, v := range r.rows {
		n += v
	}
	return n
}

func (r *report) Total() int {
	return r.total.Bind(r.sum).Get()
}

func TestValueZeroBind(t *testing.T) {
	r := &report{rows: []int{1, 2, 3}}

	if got := r.Total(); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
	r.rows = append(r.rows, 4)
	if got := r.Total(); got != 6 {
		t.Fatalf("got %d, want cached 6", got)
	}

	r.total.Invalidate()
	if got := r.Total(); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
	if r.sums != 2 {
		t.Fatalf("sum called %d times, want 2", r.sums)
	}
}

func TestValueWithoutProducerPanics(t *testing.T) {
	var v lazy.Value[int, lazy.LazyKind]

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	v.Get()
}

func TestValueKind(t *testing.T) {
	if k := lazy.NewValue[int, lazy.LazyKind](func() int { return 0 }).Kind(); k != lazy.Lazy {
		t.Fatalf("got kind %v, want lazy", k)
	}
	if k := lazy.NewValue[int, lazy.CachedKind](func() int { return 0 }).Kind(); k != lazy.Cached {
		t.Fatalf("got kind %v, want cached", k)
	}
}
