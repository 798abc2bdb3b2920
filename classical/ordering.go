package classical

import "fmt"

// The type system is small, so the partial order is not kept as an explicit
// graph. Two types are unordered unless a function for their kind pair is
// registered in the orderers table.

// Ordering is the relation between two types. Types are only partially
// ordered, so two types may have no relation at all.
type Ordering uint8

const (
	// OrderingLess means the left type is a strict subtype of the right.
	OrderingLess Ordering = iota
	// OrderingEqual means the two types are equal.
	OrderingEqual
	// OrderingGreater means the left type is a strict supertype of the right.
	OrderingGreater
	// OrderingNone means the types have no subtyping relation.
	OrderingNone
)

func (o Ordering) String() string {
	switch o {
	case OrderingLess:
		return "Less"
	case OrderingEqual:
		return "Equal"
	case OrderingGreater:
		return "Greater"
	}
	return "None"
}

func orderUintUint(left, right Type) Ordering {
	if left.Width < right.Width {
		return OrderingLess
	}
	if left.Width == right.Width {
		return OrderingEqual
	}
	return OrderingGreater
}

func orderEqual(Type, Type) Ordering { return OrderingEqual }

var orderers = map[[2]Kind]func(Type, Type) Ordering{
	{KindBool, KindBool}:         orderEqual,
	{KindUint, KindUint}:         orderUintUint,
	{KindFloat, KindFloat}:       orderEqual,
	{KindDuration, KindDuration}: orderEqual,
}

// Order returns the ordering relation between the two types.
func Order(left, right Type) Ordering {
	orderer, ok := orderers[[2]Kind{left.Kind, right.Kind}]
	if !ok {
		return OrderingNone
	}
	return orderer(left, right)
}

// IsSubtype reports whether left <= right. Unordered types are never
// subtypes of each other.
func IsSubtype(left, right Type) bool {
	o := Order(left, right)
	return o == OrderingLess || o == OrderingEqual
}

// IsStrictSubtype reports whether left < right.
func IsStrictSubtype(left, right Type) bool {
	return Order(left, right) == OrderingLess
}

// IsSupertype reports whether left >= right.
func IsSupertype(left, right Type) bool {
	o := Order(left, right)
	return o == OrderingGreater || o == OrderingEqual
}

// IsStrictSupertype reports whether left > right.
func IsStrictSupertype(left, right Type) bool {
	return Order(left, right) == OrderingGreater
}

// Greater returns the greater of the two types. It fails if the types have
// no ordering relation between them.
func Greater(left, right Type) (Type, error) {
	switch Order(left, right) {
	case OrderingGreater:
		return left, nil
	case OrderingLess, OrderingEqual:
		return right, nil
	}
	return Type{}, fmt.Errorf("no ordering exists between '%s' and '%s'", left, right)
}

// CastKind classifies the cast that moves a value from one type to another.
type CastKind uint8

const (
	// CastEqual means the types are equal; no cast is required.
	CastEqual CastKind = iota
	// CastImplicit means the cast happens implicitly.
	CastImplicit
	// CastLossless means an explicit but always-safe cast.
	CastLossless
	// CastDangerous means the cast is defined but may lose data.
	CastDangerous
	// CastNone means no cast is permitted.
	CastNone
)

func (c CastKind) String() string {
	switch c {
	case CastEqual:
		return "Equal"
	case CastImplicit:
		return "Implicit"
	case CastLossless:
		return "Lossless"
	case CastDangerous:
		return "Dangerous"
	}
	return "None"
}

func uintCast(from, to Type) CastKind {
	if from.Width == to.Width {
		return CastEqual
	}
	if from.Width < to.Width {
		return CastLossless
	}
	return CastDangerous
}

func castAs(kind CastKind) func(Type, Type) CastKind {
	return func(Type, Type) CastKind { return kind }
}

var allowedCasts = map[[2]Kind]func(Type, Type) CastKind{
	{KindBool, KindBool}:         castAs(CastEqual),
	{KindBool, KindUint}:         castAs(CastLossless),
	{KindBool, KindFloat}:        castAs(CastLossless),
	{KindUint, KindBool}:         castAs(CastImplicit),
	{KindUint, KindUint}:         uintCast,
	{KindUint, KindFloat}:        castAs(CastDangerous),
	{KindFloat, KindFloat}:       castAs(CastEqual),
	{KindFloat, KindUint}:        castAs(CastDangerous),
	{KindFloat, KindBool}:        castAs(CastDangerous),
	{KindDuration, KindDuration}: castAs(CastEqual),
}

// CastKindOf determines the cast required to move from one type to another.
func CastKindOf(from, to Type) CastKind {
	coercer, ok := allowedCasts[[2]Kind{from.Kind, to.Kind}]
	if !ok {
		return CastNone
	}
	return coercer(from, to)
}
