package intervalset

// runnable is a deferred call that may fail.
type runnable func() error

func toRunnable2[T1, T2 any](f func(T1, T2) error, a T1, b T2) runnable {
	return func() error {
		return f(a, b)
	}
}

// run calls rs in order and stops at the first error.
func run(rs ...runnable) error {
	for _, r := range rs {
		if err := r(); err != nil {
			return err
		}
	}
	return nil
}
