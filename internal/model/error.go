package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")     // 400
	ErrMotorcycleNotFound = errors.New("motorcycle not found") // 404
	ErrMotorcycleConflict = errors.New("motorcycle conflict")  // 409
	ErrAmbiguousResult    = errors.New("ambiguous result")     // 500
	ErrStorageUnavailable = errors.New("storage unavailable")  // 500

	ErrVINMismatch = fmt.Errorf("%w: payload VIN does not match path VIN", ErrValidation)
)
