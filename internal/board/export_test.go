package board

// SetHostInit swaps the periph host initializer for the duration of a test.
func SetHostInit(f func() error) (restore func()) {
	old := hostInit
	hostInit = f
	return func() { hostInit = old }
}
