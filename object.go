package lazy

// Instance is anything with a runtime class. Lazy attributes additionally
// need the instance to implement [Storer] with a non-nil dict.
type Instance interface {
	Class() *Class
}

// Storer is implemented by instances that carry per-instance storage.
type Storer interface {
	Dict() Dict
}

// Object is the default Instance. Embed it, or use it directly:
//
//	type Circle struct {
//		lazy.Object
//		R float64
//	}
//
//	c := &Circle{Object: circleClass.Make(), R: 2}
type Object struct {
	class *Class
	dict  Dict
}

// Class returns the object's runtime class.
func (o *Object) Class() *Class {
	return o.class
}

// Dict returns the object's storage, or nil for a slotted class.
func (o *Object) Dict() Dict {
	return o.dict
}

func dictOf(inst Instance) Dict {
	s, ok := inst.(Storer)
	if !ok {
		return nil
	}
	return s.Dict()
}
