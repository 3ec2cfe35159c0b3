package geniter

// Run drives a computation to completion, calling f for each value it
// yields, and returns the terminal result.
//
// Run assumes ownership of c: it must be its only driver.
func Run[Y, R any](c Resumable[Y, R], f func(Y)) R {
	// The computation is run to completion, but f might panic in which case
	// we don't want to leave it in an uncompleted state and interrupt it
	// instead.
	done := false
	defer func() {
		if !done {
			if s, ok := c.(Stopper); ok {
				s.Stop()
				c.Resume()
			}
		}
	}()

	for {
		st := c.Resume()
		if r, ok := st.Result(); ok {
			done = true
			return r
		}
		v, _ := st.Value()
		f(v)
	}
}
