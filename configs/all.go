package configs

import (
	"fmt"
	"iter"
)

// All decodes the value at path from every file defining it, in file order.
// Load and decode errors panic; check Loader.Err at startup to report them instead.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			var ret T
			if err := value.Decode(&ret); err != nil {
				panic(fmt.Errorf("decode config %s: %w", path, err))
			}
			if !yield(ret) {
				return
			}
		}
	}
}
