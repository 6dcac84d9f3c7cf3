package lazy

// Marker is a zero-size type naming the kind of a [Value]. Invalidation
// helpers constrained to one marker refuse values of another at compile
// time.
type Marker interface {
	Kind() *Kind
}

// LazyKind marks a Value as plain lazy.
type LazyKind struct{}

// Kind returns [Lazy].
func (LazyKind) Kind() *Kind { return Lazy }

// CachedKind marks a Value as cached, meaning invalidation is part of its
// contract.
type CachedKind struct{}

// Kind returns [Cached].
func (CachedKind) Kind() *Kind { return Cached }

// Value is a typed lazy field: hold one per lazy attribute in the owning
// struct and read it through Get. It is not safe for concurrent use.
//
//	type Report struct {
//		rows  []Row
//		total lazy.Value[int, lazy.LazyKind]
//	}
//
//	func (r *Report) Total() int {
//		return r.total.Bind(r.sum).Get()
//	}
type Value[T any, K Marker] struct {
	fn       func() (T, error)
	val      T
	computed bool
}

// NewValue returns an uncomputed Value produced by fn.
func NewValue[T any, K Marker](fn func() T) *Value[T, K] {
	v := &Value[T, K]{}
	return v.Bind(fn)
}

// NewValueE returns an uncomputed Value produced by a fallible fn.
func NewValueE[T any, K Marker](fn func() (T, error)) *Value[T, K] {
	return &Value[T, K]{fn: fn}
}

// Bind sets the producer if none is set yet and returns v. It lets a zero
// Value embedded in a struct be initialised at its first read.
func (v *Value[T, K]) Bind(fn func() T) *Value[T, K] {
	if v.fn == nil && fn != nil {
		v.fn = func() (T, error) { return fn(), nil }
	}
	return v
}

// Get returns the cached value, computing it on first use. It panics if
// no producer is bound or a fallible producer fails; use GetE for those.
func (v *Value[T, K]) Get() T {
	val, err := v.GetE()
	if err != nil {
		panic(err)
	}
	return val
}

// GetE is like Get but returns the producer's error. A failed computation
// leaves v uncomputed.
func (v *Value[T, K]) GetE() (T, error) {
	if v.computed {
		return v.val, nil
	}
	if v.fn == nil {
		panic("lazy: Value has no producer")
	}
	val, err := v.fn()
	if err != nil {
		var zero T
		return zero, err
	}
	v.val, v.computed = val, true
	return val, nil
}

// Peek returns the cached value without computing it.
func (v *Value[T, K]) Peek() (T, bool) {
	return v.val, v.computed
}

// Computed reports whether a value is cached.
func (v *Value[T, K]) Computed() bool {
	return v.computed
}

// Invalidate drops the cached value. The next Get recomputes. Calling it on
// an uncomputed Value is a no-op.
func (v *Value[T, K]) Invalidate() {
	var zero T
	v.val, v.computed = zero, false
}

// Kind returns the kind named by K.
func (v *Value[T, K]) Kind() *Kind {
	var k K
	return k.Kind()
}

// InvalidateCached invalidates a cached Value. It does not accept plain
// lazy values; (*Value).Invalidate accepts every kind.
func InvalidateCached[T any](v *Value[T, CachedKind]) {
	v.Invalidate()
}
