package lazy

import "github.com/puzpuzpuz/xsync/v3"

// Dict is per-instance attribute storage, keyed by resolved name.
type Dict interface {
	Load(name string) (any, bool)
	Store(name string, v any)
	Delete(name string)
	Len() int
	// Range calls fn for each entry until fn returns false.
	Range(fn func(name string, v any) bool)
}

type mapDict map[string]any

// NewDict returns a map-backed Dict. It is not safe for concurrent use.
func NewDict() Dict {
	return mapDict{}
}

func (d mapDict) Load(name string) (any, bool) {
	v, ok := d[name]
	return v, ok
}

func (d mapDict) Store(name string, v any) { d[name] = v }

func (d mapDict) Delete(name string) { delete(d, name) }

func (d mapDict) Len() int { return len(d) }

func (d mapDict) Range(fn func(name string, v any) bool) {
	for k, v := range d {
		if !fn(k, v) {
			return
		}
	}
}

// syncDict lets several goroutines share one instance. Reads and
// invalidations are still check-then-set: two first reads racing may both
// run the producer, and the later store wins.
type syncDict struct {
	m *xsync.MapOf[string, any]
}

// NewSyncDict returns a Dict that is safe for concurrent use. It does not
// coalesce concurrent first reads.
func NewSyncDict() Dict {
	return &syncDict{m: xsync.NewMapOf[string, any]()}
}

func (d *syncDict) Load(name string) (any, bool) { return d.m.Load(name) }

func (d *syncDict) Store(name string, v any) { d.m.Store(name, v) }

func (d *syncDict) Delete(name string) { d.m.Delete(name) }

func (d *syncDict) Len() int { return d.m.Size() }

func (d *syncDict) Range(fn func(name string, v any) bool) { d.m.Range(fn) }

func (d *syncDict) synchronized() {}

// IsSync reports whether d is safe for concurrent use.
func IsSync(d Dict) bool {
	_, ok := d.(interface{ synchronized() })
	return ok
}
