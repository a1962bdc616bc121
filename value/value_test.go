package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/delkyd/gsf/guid"
)

func TestWiden(t *testing.T) {
	tests := []struct {
		a, b Type
		want Type
	}{
		{Int32, Int64, Int64},
		{Int64, Int32, Int64},
		{Boolean, Int32, Int32},
		{Decimal, Int64, Decimal},
		{Single, Decimal, Single},
		{Double, Single, Double},
	}
	for _, tt := range tests {
		got, err := Widen(tt.a, tt.b)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestWidenRejectsNonNumeric(t *testing.T) {
	_, err := Widen(String, Int32)
	assert.Error(t, err)
}

func TestArithmeticNullPropagation(t *testing.T) {
	sum, err := Add(Null(Int32), NewInt32(5))
	assert.NoError(t, err)
	assert.True(t, sum.IsNull())
	assert.Equal(t, Int32, sum.Type())
}

func TestAddWidensToDouble(t *testing.T) {
	sum, err := Add(NewInt32(2), NewDouble(1.5))
	assert.NoError(t, err)
	f, ok := sum.Double()
	assert.True(t, ok)
	assert.Equal(t, 3.5, f)
}

func TestDivideByZero(t *testing.T) {
	_, err := Divide(NewInt32(1), NewInt32(0))
	assert.Error(t, err)
}

func TestModulusIntegerOperands(t *testing.T) {
	m, err := Modulus(NewInt32(7), NewInt32(3))
	assert.NoError(t, err)
	i, ok := m.Int32()
	assert.True(t, ok)
	assert.Equal(t, int32(1), i)
}

func TestModulusFloatingPointRemainder(t *testing.T) {
	m, err := Modulus(NewDouble(5.5), NewDouble(2.0))
	assert.NoError(t, err)
	f, ok := m.Double()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)
}

func TestDecimalArithmetic(t *testing.T) {
	a := NewDecimal(big.NewFloat(1.5))
	b := NewDecimal(big.NewFloat(2.5))
	sum, err := Add(a, b)
	assert.NoError(t, err)
	d, ok := sum.DecimalValue()
	assert.True(t, ok)
	assert.Equal(t, "4", d.Text('f', 0))
}

func TestCompareStringsCaseSensitiveOrdering(t *testing.T) {
	c, err := Compare(NewString("abc"), NewString("ABC"))
	assert.NoError(t, err)
	assert.NotEqual(t, 0, c)
}

func TestEqualStringsCaseInsensitive(t *testing.T) {
	eq, err := Equal(NewString("abc"), NewString("ABC"))
	assert.NoError(t, err)
	b, _ := eq.Bool()
	assert.True(t, b)
}

func TestEqualAcrossIncompatibleCategoriesIsFalseNotError(t *testing.T) {
	eq, err := Equal(NewString("x"), NewGuid(guid.Zero))
	assert.NoError(t, err)
	b, ok := eq.Bool()
	assert.True(t, ok)
	assert.False(t, b)
}

func TestThreeValuedAnd(t *testing.T) {
	// false AND NULL -> false
	r, err := And(NewBoolean(false), Null(Boolean))
	assert.NoError(t, err)
	b, ok := r.Bool()
	assert.True(t, ok)
	assert.False(t, b)

	// true AND NULL -> NULL
	r, err = And(NewBoolean(true), Null(Boolean))
	assert.NoError(t, err)
	assert.True(t, r.IsNull())
}

func TestThreeValuedOr(t *testing.T) {
	r, err := Or(NewBoolean(true), Null(Boolean))
	assert.NoError(t, err)
	b, ok := r.Bool()
	assert.True(t, ok)
	assert.True(t, b)

	r, err = Or(NewBoolean(false), Null(Boolean))
	assert.NoError(t, err)
	assert.True(t, r.IsNull())
}

func TestLike(t *testing.T) {
	tests := []struct {
		s, pattern string
		want       bool
	}{
		{"PMU1-FREQ", "PMU1%", true},
		{"PMU1-FREQ", "pmu1%", true},
		{"PMU1-FREQ", "%FREQ", true},
		{"PMU1-FREQ", "PMU_-FREQ", true},
		{"PMU1-FREQ", "PMU2%", false},
	}
	for _, tt := range tests {
		r, err := Like(NewString(tt.s), NewString(tt.pattern))
		assert.NoError(t, err)
		b, _ := r.Bool()
		assert.Equal(t, tt.want, b, "Like(%q, %q)", tt.s, tt.pattern)
		assert.Equal(t, b, likeMatchLiteral(tt.s, tt.pattern))
	}
}

func TestConvert(t *testing.T) {
	v := Convert(NewString("42"), "Int32")
	i, ok := v.Int32()
	assert.True(t, ok)
	assert.Equal(t, int32(42), i)

	null := Convert(NewString("not-a-number"), "Int32")
	assert.True(t, null.IsNull())
	assert.Equal(t, Int32, null.Type())
}

func TestSubString(t *testing.T) {
	v, err := SubString(NewString("ActiveMeasurements"), NewInt32(0), nil)
	assert.NoError(t, err)
	s, _ := v.StringValue()
	assert.Equal(t, "ActiveMeasurements", s)

	length := NewInt32(6)
	v, err = SubString(NewString("ActiveMeasurements"), NewInt32(0), &length)
	assert.NoError(t, err)
	s, _ = v.StringValue()
	assert.Equal(t, "Active", s)

	v, err = SubString(NewString("abc"), NewInt32(10), nil)
	assert.NoError(t, err)
	s, _ = v.StringValue()
	assert.Equal(t, "", s)
}

func TestTrim(t *testing.T) {
	v, err := Trim(NewString("  hello  "))
	assert.NoError(t, err)
	s, _ := v.StringValue()
	assert.Equal(t, "hello", s)
}

func TestCoalesce(t *testing.T) {
	v := Coalesce([]Value{Null(String), Null(Int32), NewInt32(7)})
	i, ok := v.Int32()
	assert.True(t, ok)
	assert.Equal(t, int32(7), i)
}

func TestIsRegExMatch(t *testing.T) {
	v, err := IsRegExMatch(NewString("^PMU[0-9]+$"), NewString("PMU42"))
	assert.NoError(t, err)
	b, _ := v.Bool()
	assert.True(t, b)
}
