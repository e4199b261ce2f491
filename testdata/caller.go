package fixtures

// body drives helper with padding above and below the call.
func body() error {
	prepare()
	err := helper()
	finish()
	return err
}

func prepare() {}

func finish() {}
