package guid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroIsZero(t *testing.T) {
	assert.True(t, Zero.IsZero())
	var g Guid
	assert.True(t, g.IsZero())
}

func TestParseRoundTrip(t *testing.T) {
	g, err := Parse("7cec1db1-dcee-4ef5-adc2-6bf2b45a1bcb")
	require.NoError(t, err)
	assert.False(t, g.IsZero())
	assert.Equal(t, "7cec1db1-dcee-4ef5-adc2-6bf2b45a1bcb", g.String())
}

func TestParseRejectsMalformedText(t *testing.T) {
	_, err := Parse("not-a-guid")
	assert.Error(t, err)
}

func TestMustParsePanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("not-a-guid")
	})
}

func TestCompareOrdersBytewise(t *testing.T) {
	a := MustParse("00000000-0000-0000-0000-000000000001")
	b := MustParse("00000000-0000-0000-0000-000000000002")
	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, a))
}

func TestNewGeneratesNonZeroValue(t *testing.T) {
	g := New()
	assert.False(t, g.IsZero())
}
