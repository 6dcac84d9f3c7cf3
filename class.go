package lazy

import (
	"fmt"
	"sort"
)

// Method is a callable class attribute. inst is the receiver.
type Method func(inst Instance, args ...any) (any, error)

// Class holds class-level attributes and the single-inheritance chain
// they are looked up through. Classes are meant to be built once, at
// package init, and not mutated concurrently with reads.
type Class struct {
	name     string
	base     *Class
	attrs    map[string]any
	order    []string
	slots    bool
	observer Observer
}

// NewClass creates a class named name deriving from base, which may be nil.
func NewClass(name string, base *Class, opts ...ClassOption) *Class {
	c := &Class{
		name:  name,
		base:  base,
		attrs: make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Base returns the parent class, or nil.
func (c *Class) Base() *Class {
	return c.base
}

// Define sets a class attribute. Private names (leading "__", no trailing
// "__") are stored mangled as _<Class><name>. An [*Attribute] value is
// bound to c under name; binding one attribute to two places panics.
func (c *Class) Define(name string, v any) *Class {
	if name == "" {
		panic("lazy: empty attribute name")
	}
	if a, ok := v.(*Attribute); ok {
		a.bind(c, name)
	}
	resolved := mangle(c.name, name)
	if _, exists := c.attrs[resolved]; !exists {
		c.order = append(c.order, resolved)
	}
	c.attrs[resolved] = v
	return c
}

// Add binds a under its producer's declared name. Use it when the
// producer's function name is the attribute name.
func (c *Class) Add(a *Attribute) *Class {
	return c.Define(a.Name(), a)
}

// Lookup finds name along the class chain starting at c. name must already
// be resolved. It returns the value and the class declaring it.
func (c *Class) Lookup(name string) (any, *Class, bool) {
	for cur := c; cur != nil; cur = cur.base {
		if v, ok := cur.attrs[name]; ok {
			return v, cur, true
		}
	}
	return nil, nil, false
}

// Own returns the resolved names declared directly on c, in definition order.
func (c *Class) Own() []string {
	return append([]string(nil), c.order...)
}

// MRO returns c followed by its ancestors.
func (c *Class) MRO() []*Class {
	var mro []*Class
	for cur := c; cur != nil; cur = cur.base {
		mro = append(mro, cur)
	}
	return mro
}

// IsSubclass reports whether c is other or derives from it.
func (c *Class) IsSubclass(other *Class) bool {
	for cur := c; cur != nil; cur = cur.base {
		if cur == other {
			return true
		}
	}
	return false
}

// New returns an instance of c with a plain [Dict], or with no dict at all
// when c was created WithSlots.
func (c *Class) New() *Object {
	o := c.Make()
	return &o
}

// NewWith is like New but stores values in d.
func (c *Class) NewWith(d Dict) *Object {
	o := c.MakeWith(d)
	return &o
}

// Make returns an Object value for embedding in your own struct.
func (c *Class) Make() Object {
	if c.hasSlots() {
		return Object{class: c}
	}
	return Object{class: c, dict: NewDict()}
}

// MakeWith is like Make but stores values in d.
func (c *Class) MakeWith(d Dict) Object {
	if c.hasSlots() {
		return Object{class: c}
	}
	return Object{class: c, dict: d}
}

func (c *Class) hasSlots() bool {
	for cur := c; cur != nil; cur = cur.base {
		if !cur.slots {
			return false
		}
	}
	return true
}

// GetAttr reads name on inst the way code inside c's body would: a private
// name is mangled with c's name, then looked up from inst's runtime class.
func (c *Class) GetAttr(inst Instance, name string) (any, error) {
	return getAttr(inst, mangle(c.name, name))
}

// GetAttr reads name on inst from outside any class body. A private name
// is mangled with inst's runtime class.
func GetAttr(inst Instance, name string) (any, error) {
	return getAttr(inst, mangle(inst.Class().Name(), name))
}

func getAttr(inst Instance, name string) (any, error) {
	cls := inst.Class()
	v, _, found := cls.Lookup(name)
	if a, ok := v.(*Attribute); ok {
		return a.Get(inst, cls)
	}
	if d := dictOf(inst); d != nil {
		if dv, ok := d.Load(name); ok {
			return dv, nil
		}
	}
	if !found {
		return nil, errUnknownInstanceAttr(cls.Name(), cls.Name(), name)
	}
	return v, nil
}

// Super reads name as super(c, inst).name would: the lookup starts at c's
// base. A lazy attribute found there still reads and fills inst's dict.
func (c *Class) Super(inst Instance, name string) (any, error) {
	name = mangle(c.name, name)
	if c.base == nil {
		return nil, errUnknownInstanceAttr("super", c.name, name)
	}
	v, _, ok := c.base.Lookup(name)
	if !ok {
		return nil, errUnknownInstanceAttr("super", c.name, name)
	}
	if a, ok := v.(*Attribute); ok {
		return a.Get(inst, inst.Class())
	}
	return v, nil
}

// Call reads name as GetAttr does and calls it. Only [Method] values are
// callable; anything else, including a lazy attribute or its computed
// value, fails with ErrNotCallable.
func (c *Class) Call(inst Instance, name string, args ...any) (any, error) {
	v, err := c.GetAttr(inst, name)
	if err != nil {
		return nil, err
	}
	m, ok := v.(Method)
	if !ok {
		return nil, errNotCallable(v)
	}
	return m(inst, args...)
}

// Wrap turns v into a Method that forwards to it. Wrapping a descriptor
// rather than a producer hides the descriptor from the class, so wrap
// producers first and make the lazy attribute the outermost layer.
func Wrap(v any) Method {
	return func(inst Instance, args ...any) (any, error) {
		switch fn := v.(type) {
		case Method:
			return fn(inst, args...)
		case Producer:
			return fn(inst), nil
		case func(Instance) any:
			return fn(inst), nil
		case ProducerE:
			return fn(inst)
		case func(Instance) (any, error):
			return fn(inst)
		}
		return nil, errNotCallable(v)
	}
}

func (c *Class) emit(event Event, name string, k *Kind) {
	for cur := c; cur != nil; cur = cur.base {
		if cur.observer != nil {
			cur.observer.On(EventData{
				Event: event,
				Class: c.name,
				Name:  name,
				Kind:  k.Name(),
			})
			return
		}
	}
}

func (c *Class) String() string {
	return fmt.Sprintf("<class %s>", c.name)
}

// Descriptors returns the resolved names of every attribute of kind k, or
// of a kind derived from it, declared on cls or its ancestors. A name
// overridden in a subclass is listed once per declaring class.
func Descriptors(cls *Class, k *Kind) []string {
	var names []string
	for _, c := range cls.MRO() {
		for _, name := range c.order {
			if a, ok := c.attrs[name].(*Attribute); ok && a.kind.Is(k) {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
