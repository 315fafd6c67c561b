package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is matched by every *ConfigLookupError.
var ErrUnknownKey = errors.New("unknown configuration key")

// Lookup kinds reported by ConfigLookupError.
const (
	KindTheme  = "theme"
	KindFont   = "font"
	KindSchema = "schema"
)

// ConfigLookupError is returned when a raw string does not name a member of a
// closed enumeration (theme, font, schema).
type ConfigLookupError struct {
	Kind string
	Key  string
}

func (e *ConfigLookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}

// Is reports whether target is ErrUnknownKey.
func (e *ConfigLookupError) Is(target error) bool {
	return target == ErrUnknownKey
}

func lookupError(kind, key string) error {
	return &ConfigLookupError{Kind: kind, Key: key}
}
