package lazy

// Option configures an Attribute created by New or Kind.New.
type Option func(*Attribute)

// WithName overrides the name taken from the producer function. Class.Add
// binds under this name.
func WithName(name string) Option {
	return func(a *Attribute) {
		a.name = name
		a.resolved = name
	}
}

// WithDoc sets the attribute's documentation string.
func WithDoc(doc string) Option {
	return func(a *Attribute) {
		a.doc = doc
	}
}

// ClassOption configures a Class created by NewClass.
type ClassOption func(*Class)

// WithSlots marks the class as having no per-instance dict. Instances of a
// class whose whole chain is slotted reject lazy attribute reads and
// invalidations with ErrNoInstanceStorage.
func WithSlots() ClassOption {
	return func(c *Class) {
		c.slots = true
	}
}

// WithObserver attaches an Observer that receives hit, miss, and
// invalidate events for instances of the class and of subclasses that do
// not set their own.
func WithObserver(o Observer) ClassOption {
	return func(c *Class) {
		c.observer = o
	}
}
