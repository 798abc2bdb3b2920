package classical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder(t *testing.T) {
	assert.Equal(t, OrderingLess, Order(Uint(8), Uint(16)))
	assert.Equal(t, OrderingEqual, Order(Uint(8), Uint(8)))
	assert.Equal(t, OrderingGreater, Order(Uint(16), Uint(8)))
	assert.Equal(t, OrderingNone, Order(Uint(8), Bool()))
	assert.Equal(t, OrderingEqual, Order(Bool(), Bool()))
	assert.Equal(t, OrderingEqual, Order(Float(), Float()))
	assert.Equal(t, OrderingEqual, Order(Duration(), Duration()))
	assert.Equal(t, OrderingNone, Order(Float(), Duration()))
}

func TestSubtypeSupertype(t *testing.T) {
	assert.True(t, IsSubtype(Uint(8), Uint(16)))
	assert.True(t, IsSubtype(Bool(), Bool()))
	assert.False(t, IsStrictSubtype(Bool(), Bool()))
	assert.True(t, IsStrictSubtype(Uint(8), Uint(16)))
	assert.False(t, IsSubtype(Uint(8), Bool()))

	assert.False(t, IsSupertype(Uint(8), Uint(16)))
	assert.True(t, IsSupertype(Uint(16), Uint(8)))
	assert.True(t, IsSupertype(Bool(), Bool()))
	assert.False(t, IsStrictSupertype(Bool(), Bool()))
}

func TestGreater(t *testing.T) {
	got, err := Greater(Uint(8), Uint(16))
	require.NoError(t, err)
	assert.Equal(t, Uint(16), got)

	got, err = Greater(Uint(16), Uint(8))
	require.NoError(t, err)
	assert.Equal(t, Uint(16), got)

	got, err = Greater(Bool(), Bool())
	require.NoError(t, err)
	assert.Equal(t, Bool(), got)

	_, err = Greater(Uint(8), Bool())
	require.Error(t, err)
}

func TestCastKindOf(t *testing.T) {
	assert.Equal(t, CastEqual, CastKindOf(Bool(), Bool()))
	assert.Equal(t, CastImplicit, CastKindOf(Uint(8), Bool()))
	assert.Equal(t, CastLossless, CastKindOf(Bool(), Uint(8)))
	assert.Equal(t, CastLossless, CastKindOf(Bool(), Float()))
	assert.Equal(t, CastEqual, CastKindOf(Uint(16), Uint(16)))
	assert.Equal(t, CastLossless, CastKindOf(Uint(8), Uint(16)))
	assert.Equal(t, CastDangerous, CastKindOf(Uint(16), Uint(8)))
	assert.Equal(t, CastDangerous, CastKindOf(Uint(16), Float()))
	assert.Equal(t, CastDangerous, CastKindOf(Float(), Uint(16)))
	assert.Equal(t, CastDangerous, CastKindOf(Float(), Bool()))
	assert.Equal(t, CastEqual, CastKindOf(Duration(), Duration()))
	assert.Equal(t, CastNone, CastKindOf(Duration(), Float()))
	assert.Equal(t, CastNone, CastKindOf(Bool(), Duration()))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Uint(8)", Uint(8).String())
	assert.Equal(t, "Bool", Bool().String())
	assert.Equal(t, "Less", Order(Uint(1), Uint(2)).String())
	assert.Equal(t, "None", Order(Bool(), Float()).String())
	assert.Equal(t, "Dangerous", CastKindOf(Float(), Bool()).String())
}
