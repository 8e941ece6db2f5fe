package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(0))
	assert.Nil(t, nullable(""))
	assert.Equal(t, 3, *nullable(3))
	assert.Equal(t, "Discovery", *nullable("Discovery"))
}

func TestDeref(t *testing.T) {
	assert.Equal(t, 0, deref[int](nil))
	assert.Equal(t, "", deref[string](nil))
}

// Property: deref(nullable(v)) == v for every value.
func TestPropertyNullableRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int().Draw(t, "v")
		if got := deref(nullable(v)); got != v {
			t.Fatalf("deref(nullable(%d)) = %d", v, got)
		}
	})
}
