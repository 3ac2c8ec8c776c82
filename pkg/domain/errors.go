package domain

import "errors"

// ErrKeyNotFound is returned when a storage key has no entry.
var ErrKeyNotFound = errors.New("storage key not found")

// ErrValueType is returned when a storage value does not hold the requested type.
var ErrValueType = errors.New("unexpected storage value type")

// ErrNilValue is returned when a typed accessor is called on an empty value.
var ErrNilValue = errors.New("storage value is nil")
