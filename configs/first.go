package configs

import (
	"errors"
	"fmt"
)

// First decodes the value at path from the first file defining it.
// A path no file defines gives the zero value.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.AssignFirst(path, &ret)
	switch {
	case err == nil, errors.Is(err, ErrValueNotFound):
		return
	}
	panic(fmt.Errorf("config %s: %w", path, err))
}
