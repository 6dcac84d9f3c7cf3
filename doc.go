// Package lazy provides lazily evaluated, memoizing instance attributes.
//
// A lazy attribute is computed on its first read, stored in the instance,
// and returned unchanged by every later read until it is invalidated.
//
// The package offers two surfaces. The dynamic model mirrors attribute
// descriptors: declare attributes on a [Class], create instances with a
// per-instance [Dict], and read them with [GetAttr]:
//
//	var Circle = lazy.NewClass("Circle", nil).
//		Define("area", lazy.New(func(inst lazy.Instance) any {
//			return math.Pi * radius(inst) * radius(inst)
//		}))
//
//	c := Circle.New()
//	area, err := lazy.Get[float64](c, "area")
//	err = lazy.Invalidate(c, "area")
//
// The typed model is a plain struct field, [Value], with explicit Get and
// Invalidate methods and a kind marker checked at compile time.
//
// # Kinds
//
// Every attribute has a [Kind]. [Cached] is derived from [Lazy]:
// Lazy.Invalidate accepts cached attributes, but Cached.Invalidate refuses
// plain lazy ones with [ErrNotThisKind].
//
// # Private names
//
// A name with a leading "__" and no trailing "__" is private. It is stored
// as _<Class><name>, using the declaring class for reads through
// [Class.GetAttr] and the instance's runtime class for invalidation.
// Invalidation accepts both the declared and the mangled name.
//
// # Concurrency
//
// Nothing is locked. A read checks the dict, runs the producer and stores
// the result; racing reads may each run the producer. [NewSyncDict] keeps
// the storage itself consistent across goroutines but does not coalesce
// computations.
package lazy
