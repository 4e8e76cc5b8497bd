package ginger

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// The "enum" validation rule in package req accepts a field only if it, or each item in it, is a valid Enumerable.
type Enumerable interface {
	String() string
	Valid() error
}
