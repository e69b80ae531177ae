package modes

// Mode tells providers whether they run for real or under tests.
type Mode uint8

const (
	ModeProduction Mode = iota + 1
	ModeTest
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeTest:
		return "test"
	}
	return "unknown"
}

// Isolated reports whether providers should avoid reading state outside the
// working directory, such as user and system config files.
func (m Mode) Isolated() bool {
	return m != ModeProduction
}
