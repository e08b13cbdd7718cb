package utils

import "fmt"

type Runnable func() error

// Step wraps r so that its error names the step that failed.
func Step(name string, r Runnable) Runnable {
	return func() error {
		if err := r(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
}

// Run runs rs in order and stops at the first error.
func Run(rs ...Runnable) error {
	for _, r := range rs {
		if err := r(); err != nil {
			return err
		}
	}
	return nil
}
