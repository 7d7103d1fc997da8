package configs

import "errors"

// First decodes the first value at path, or returns the zero value if no file defines it.
func First[T any](loader Loader, path string) (value T, err error) {
	err = loader.AssignFirst(path, &value)
	if errors.Is(err, ErrValueNotFound) {
		err = nil
	}
	return
}
