// Package classical models the simple classical type system attached to
// circuits (booleans, unsigned integers, floats, durations) and the
// partial ordering and cast rules between its types.
package classical

import "fmt"

// Kind discriminates the classical types.
type Kind uint8

const (
	KindBool Kind = iota
	KindUint
	KindFloat
	KindDuration
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindUint:
		return "Uint"
	case KindFloat:
		return "Float"
	case KindDuration:
		return "Duration"
	}
	return "Unknown"
}

// Type is one classical type. Width is meaningful for Uint only.
type Type struct {
	Kind  Kind
	Width uint32
}

// Bool returns the boolean type.
func Bool() Type { return Type{Kind: KindBool} }

// Uint returns the unsigned integer type of the given bit width.
func Uint(width uint32) Type { return Type{Kind: KindUint, Width: width} }

// Float returns the 64-bit floating point type.
func Float() Type { return Type{Kind: KindFloat} }

// Duration returns the duration type.
func Duration() Type { return Type{Kind: KindDuration} }

func (t Type) String() string {
	if t.Kind == KindUint {
		return fmt.Sprintf("Uint(%d)", t.Width)
	}
	return t.Kind.String()
}
