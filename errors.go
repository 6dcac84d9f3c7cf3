package lazy

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by [AttributeError] via errors.Is.
var (
	// ErrNoInstanceStorage is returned when an instance has no per-instance dict.
	ErrNoInstanceStorage = errors.New("lazy: instance has no attribute store")
	// ErrNotThisKind is returned when invalidating a class attribute that is
	// not an attribute of the invalidating kind.
	ErrNotThisKind = errors.New("lazy: attribute is not of this kind")
	// ErrUnknownAttribute is returned when a name does not resolve on the class.
	ErrUnknownAttribute = errors.New("lazy: unknown attribute")
	// ErrNotCallable is returned when calling a value that is not a Method.
	ErrNotCallable = errors.New("lazy: object is not callable")
	// ErrType is returned by typed reads when the stored value has another type.
	ErrType = errors.New("lazy: attribute has unexpected type")
)

// AttributeError describes a failed read, call, or invalidation.
type AttributeError struct {
	// Err is one of the package sentinels.
	Err error
	// Class is the name of the class involved.
	Class string
	// Name is the attribute name as reported in the message.
	Name string
	// Kind is the expected kind name for ErrNotThisKind, empty otherwise.
	Kind string

	msg string
}

// Error implements the error interface.
func (e *AttributeError) Error() string {
	return e.msg
}

// Unwrap returns the sentinel so errors.Is works.
func (e *AttributeError) Unwrap() error {
	return e.Err
}

func errNoStorage(inst Instance) error {
	cls := inst.Class().Name()
	return &AttributeError{
		Err:   ErrNoInstanceStorage,
		Class: cls,
		Name:  "__dict__",
		msg:   fmt.Sprintf("'%s' object has no attribute '__dict__'", cls),
	}
}

func errUnknownClassAttr(cls *Class, name string) error {
	return &AttributeError{
		Err:   ErrUnknownAttribute,
		Class: cls.Name(),
		Name:  name,
		msg:   fmt.Sprintf("type object '%s' has no attribute '%s'", cls.Name(), name),
	}
}

func errUnknownInstanceAttr(owner, cls string, name string) error {
	return &AttributeError{
		Err:   ErrUnknownAttribute,
		Class: cls,
		Name:  name,
		msg:   fmt.Sprintf("'%s' object has no attribute '%s'", owner, name),
	}
}

func errNotKind(cls *Class, name string, k *Kind) error {
	return &AttributeError{
		Err:   ErrNotThisKind,
		Class: cls.Name(),
		Name:  name,
		Kind:  k.Name(),
		msg:   fmt.Sprintf("'%s.%s' is not a %s attribute", cls.Name(), name, k.Name()),
	}
}

func errNotCallable(v any) error {
	typ := fmt.Sprintf("%T", v)
	if a, ok := v.(*Attribute); ok {
		typ = a.Kind().Name()
	}
	return &AttributeError{
		Err: ErrNotCallable,
		msg: fmt.Sprintf("'%s' object is not callable", typ),
	}
}

func errType(cls *Class, name string, got any, want string) error {
	return &AttributeError{
		Err:   ErrType,
		Class: cls.Name(),
		Name:  name,
		msg:   fmt.Sprintf("'%s.%s' is %T, not %s", cls.Name(), name, got, want),
	}
}
