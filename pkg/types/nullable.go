// Package types provides small value types shared across semverpack: the
// packed semantic version and its nullable form.
package types

// Nullable is implemented by types that distinguish an unset value from a
// zero value, which matters for JSON null and SQL NULL.
type Nullable interface {
	IsNil() bool
}
