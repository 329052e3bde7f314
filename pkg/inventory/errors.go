package inventory

import "errors"

var (
	// ErrUnknownCatalog is returned when a catalog name is not recognised.
	ErrUnknownCatalog = errors.New("inventory: unknown catalog")
	// ErrIndexOutOfRange signals an entry index outside the fixed catalog.
	ErrIndexOutOfRange = errors.New("inventory: entry index out of range")
	// ErrSizeMismatch is returned when a replacement entry carries a different
	// size (or drain pipe type) label than the entry it replaces.
	ErrSizeMismatch = errors.New("inventory: replacement entry changes the catalog key")
	// ErrEntryType is returned by WithEntry when the entry value does not match
	// the catalog's record type.
	ErrEntryType = errors.New("inventory: entry type does not match catalog")
	// ErrNilState guards updates against a nil aggregate.
	ErrNilState = errors.New("inventory: state is nil")
)
