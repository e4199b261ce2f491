package fixtures

// helper raises the demo failure used by the snippet tests.
func helper() error {
	value := compute()
	// MARKER: the failing line is directly below
	return raise(value)
}

func compute() int { return 42 }

func raise(v int) error { return nil }
