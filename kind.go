package lazy

// Kind identifies a family of lazy attributes. Kinds form a tree rooted at
// [Lazy]; an invalidator accepts attributes of its own kind and of every
// kind derived from it, never those of a parent kind.
type Kind struct {
	name   string
	parent *Kind
}

var (
	// Lazy is the root kind. Lazy.Invalidate accepts attributes of any kind.
	Lazy = &Kind{name: "lazy"}
	// Cached is derived from Lazy for attributes whose contract expects
	// invalidation. Cached.Invalidate refuses plain Lazy attributes.
	Cached = Lazy.Derive("cached")
)

// Derive returns a new kind whose parent is k.
func (k *Kind) Derive(name string) *Kind {
	return &Kind{name: name, parent: k}
}

// Name returns the kind's display name, as used in error messages.
func (k *Kind) Name() string {
	return k.name
}

// Parent returns the kind k was derived from, or nil for [Lazy].
func (k *Kind) Parent() *Kind {
	return k.parent
}

// Is reports whether k is other or derived from it.
func (k *Kind) Is(other *Kind) bool {
	for cur := k; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

func (k *Kind) String() string {
	return k.name
}

// New returns an unbound attribute of kind k computed by fn.
func (k *Kind) New(fn Producer, opts ...Option) *Attribute {
	if fn == nil {
		panic("lazy: nil producer")
	}
	a := newAttribute(k, fn, func(inst Instance) (any, error) { return fn(inst), nil })
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewE is like New for producers that can fail. A failed computation
// stores nothing.
func (k *Kind) NewE(fn ProducerE, opts ...Option) *Attribute {
	if fn == nil {
		panic("lazy: nil producer")
	}
	a := newAttribute(k, fn, fn)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Invalidate drops the cached value of the named attribute from inst, so
// the next read recomputes it. name is the attribute name as declared; a
// private name is mangled with the instance's runtime class, and an
// already-mangled name is accepted as is.
//
// Invalidating an attribute that was never read, or was already
// invalidated, is a no-op.
func (k *Kind) Invalidate(inst Instance, name string) error {
	cls := inst.Class()
	d := dictOf(inst)
	if d == nil {
		return errNoStorage(inst)
	}

	resolved := mangle(cls.Name(), name)
	v, _, ok := cls.Lookup(resolved)
	if !ok {
		return errUnknownClassAttr(cls, name)
	}
	a, ok := v.(*Attribute)
	if !ok || !a.kind.Is(k) {
		return errNotKind(cls, resolved, k)
	}

	if _, ok := d.Load(resolved); ok {
		d.Delete(resolved)
		cls.emit(EventInvalidate, resolved, a.kind)
	}
	return nil
}

// New returns an unbound [Lazy] attribute computed by fn.
func New(fn Producer, opts ...Option) *Attribute {
	return Lazy.New(fn, opts...)
}

// NewE returns an unbound [Lazy] attribute computed by a fallible fn.
func NewE(fn ProducerE, opts ...Option) *Attribute {
	return Lazy.NewE(fn, opts...)
}

// Invalidate is Lazy.Invalidate.
func Invalidate(inst Instance, name string) error {
	return Lazy.Invalidate(inst, name)
}
