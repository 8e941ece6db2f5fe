package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/numenera/internal/game/fault"
)

func TestCategory(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"storage", fmt.Errorf("querying cypher: %w", fault.ErrStorage), "Database Error"},
		{"data format", fmt.Errorf("%w: bad expression", fault.ErrDataFormat), "Data Format Error"},
		{"doubly wrapped", fmt.Errorf("resolving: %w", fmt.Errorf("iotum: %w", fault.ErrDataFormat)), "Data Format Error"},
		{"other", errors.New("boom"), "Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, fault.Category(tc.err))
		})
	}
}
