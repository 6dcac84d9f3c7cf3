package lazy

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Warm reads each named attribute of inst so later reads take the fast
// path. Names are resolved as GetAttr resolves them; duplicates are read
// once. Reads run in parallel only when inst's dict is a sync dict. The
// first error stops further reads and is returned.
func Warm(ctx context.Context, inst Instance, names ...string) error {
	d := dictOf(inst)
	if d == nil {
		return errNoStorage(inst)
	}

	g, ctx := errgroup.WithContext(ctx)
	if !IsSync(d) {
		g.SetLimit(1)
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := GetAttr(inst, name)
			return err
		})
	}
	return g.Wait()
}
