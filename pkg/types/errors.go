// Standard errors for the finplan packages.
// Sentinels are matched with errors.Is; the typed errors carry the offending
// value and unwrap to their sentinel.
package types

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrNotFound             = errors.New("prototype not found")
	ErrUnknownVariant       = errors.New("unknown variant")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrBuilderConsumed      = errors.New("builder already built; call Reset before reuse")
)

// NotFoundError reports a registry lookup for a name that was never registered.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no prototype found for plan %q", e.Name)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// UnknownVariantError reports a discriminator that no creator is registered for.
// Kind names the family ("account", "goal", "theme", "recipe").
type UnknownVariantError struct {
	Kind  string
	Value string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s type %q", e.Kind, e.Value)
}

// Unwrap returns ErrUnknownVariant.
func (e *UnknownVariantError) Unwrap() error { return ErrUnknownVariant }

// InvalidConfigurationError reports a field that is missing or holds a value
// a derived computation cannot use.
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Field)
	}
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidConfiguration.
func (e *InvalidConfigurationError) Unwrap() error { return ErrInvalidConfiguration }
