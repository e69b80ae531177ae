package configs

// Configurable is a typed setting that knows where it lives in config files.
type Configurable interface {
	ConfigPath() string
}

// Get returns the first configured value of T.
func Get[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigPath())
}
