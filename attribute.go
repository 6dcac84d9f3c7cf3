package lazy

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Producer computes the value of a lazy attribute for inst.
type Producer func(inst Instance) any

// ProducerE is a Producer that can fail.
type ProducerE func(inst Instance) (any, error)

// Attribute is a lazy attribute descriptor. It is created once, bound to a
// class with [Class.Define] or [Class.Add], and computes one value per
// instance on first read. The value is stored in the instance's [Dict]
// under the attribute's resolved name and shadows the descriptor until
// invalidated.
type Attribute struct {
	fn   ProducerE
	kind *Kind

	name     string // declared or bound name
	resolved string // name used as the dict key
	qualName string
	module   string
	doc      string

	owner *Class
}

func newAttribute(k *Kind, orig any, fn ProducerE) *Attribute {
	module, qual, name := funcMeta(orig)
	return &Attribute{
		fn:       fn,
		kind:     k,
		name:     name,
		resolved: name,
		qualName: qual,
		module:   module,
	}
}

// funcMeta splits a runtime function name such as
// "github.com/x/y.(*T).m-fm" into package path, qualified name and name.
func funcMeta(fn any) (module, qual, name string) {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "", "", ""
	}
	full := f.Name()
	slash := strings.LastIndex(full, "/")
	dot := strings.Index(full[slash+1:], ".")
	if dot < 0 {
		return "", full, full
	}
	module = full[:slash+1+dot]
	qual = strings.TrimSuffix(full[slash+1+dot+1:], "-fm")
	name = qual[strings.LastIndex(qual, ".")+1:]
	return module, qual, name
}

// Name returns the attribute name: the name it was bound under, or the
// producer's function name when unbound.
func (a *Attribute) Name() string {
	return a.name
}

// ResolvedName returns the key the value is stored under. For a bound
// private attribute this is the mangled name.
func (a *Attribute) ResolvedName() string {
	return a.resolved
}

// QualName returns the producer's qualified name within its package.
func (a *Attribute) QualName() string {
	return a.qualName
}

// Module returns the import path of the package declaring the producer.
func (a *Attribute) Module() string {
	return a.module
}

// Doc returns the documentation set with [WithDoc].
func (a *Attribute) Doc() string {
	return a.doc
}

// Kind returns the attribute's kind.
func (a *Attribute) Kind() *Kind {
	return a.kind
}

// Owner returns the class the attribute is bound to, or nil.
func (a *Attribute) Owner() *Class {
	return a.owner
}

func (a *Attribute) String() string {
	if a.owner == nil {
		return fmt.Sprintf("<%s attribute %s>", a.kind.Name(), a.name)
	}
	return fmt.Sprintf("<%s attribute %s.%s>", a.kind.Name(), a.owner.Name(), a.name)
}

// bind is the name-binding hook run by Class.Define.
func (a *Attribute) bind(cls *Class, name string) {
	resolved := mangle(cls.Name(), name)
	if a.owner != nil && (a.owner != cls || a.resolved != resolved) {
		panic(fmt.Sprintf("lazy: %s already bound, cannot rebind as %s.%s", a, cls.Name(), name))
	}
	a.owner = cls
	a.name = name
	a.resolved = resolved
}

// Get is the read protocol. With a nil inst it returns the descriptor
// itself. Otherwise it returns the value cached in inst's dict, computing
// and storing it first when absent. cls is the class the descriptor was
// reached through and defaults to inst's runtime class; it is only used to
// mangle a private name on an unbound attribute.
//
// A read from inside the producer of the same attribute computes again;
// the outer result is stored last and wins.
func (a *Attribute) Get(inst Instance, cls *Class) (any, error) {
	if inst == nil {
		return a, nil
	}
	d := dictOf(inst)
	if d == nil {
		return nil, errNoStorage(inst)
	}
	if cls == nil {
		cls = inst.Class()
	}

	name := a.resolved
	if isPrivate(name) {
		name = mangle(cls.Name(), name)
	}

	if v, ok := d.Load(name); ok {
		inst.Class().emit(EventHit, name, a.kind)
		return v, nil
	}

	v, err := a.fn(inst)
	if err != nil {
		return nil, fmt.Errorf("lazy: computing %s: %w", name, err)
	}
	d.Store(name, v)
	inst.Class().emit(EventMiss, name, a.kind)
	return v, nil
}

func isPrivate(name string) bool {
	return strings.HasPrefix(name, "__") && !strings.HasSuffix(name, "__")
}

// mangle rewrites a private name as _<class><name>; other names are
// returned unchanged.
func mangle(class, name string) string {
	if !isPrivate(name) {
		return name
	}
	return "_" + class + name
}
