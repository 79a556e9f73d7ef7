package utils

import "errors"

// Releaser collects release functions for resources as they are acquired
// and runs them in reverse order.
type Releaser struct {
	fns []func() error
}

func (r *Releaser) Push(fn func() error) {
	r.fns = append(r.fns, fn)
}

// Release runs every pushed function, last acquired first, and forgets
// them. All functions run even if some fail; the failures are joined.
func (r *Releaser) Release() error {
	var errs []error
	for i := len(r.fns) - 1; i >= 0; i-- {
		if err := r.fns[i](); err != nil {
			errs = append(errs, err)
		}
	}
	r.fns = nil
	return errors.Join(errs...)
}

func (r *Releaser) Len() int {
	return len(r.fns)
}
