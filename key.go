package lazy

import "fmt"

// Key is a typed handle for reading a lazy attribute by name.
type Key[T any] struct {
	name string
}

// NewKey creates a typed key for the attribute called name.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the attribute name the key reads.
func (k Key[T]) Name() string {
	return k.name
}

// Get reads the attribute on inst as T.
func (k Key[T]) Get(inst Instance) (T, error) {
	return Get[T](inst, k.name)
}

// Invalidate is Lazy.Invalidate for the key's attribute.
func (k Key[T]) Invalidate(inst Instance) error {
	return Invalidate(inst, k.name)
}

// Get reads name on inst, as GetAttr does, and asserts the result to T. A
// nil value yields the zero T.
func Get[T any](inst Instance, name string) (T, error) {
	var zero T
	v, err := GetAttr(inst, name)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, errType(inst.Class(), name, v, fmt.Sprintf("%T", zero))
	}
	return t, nil
}
