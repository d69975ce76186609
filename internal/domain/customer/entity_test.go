//go:build unit

package customer_test

import (
	"testing"

	"engros-ordering/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid email", input: "mette@havnen.dk", want: "mette@havnen.dk"},
		{name: "normalized to lowercase", input: "Mette@Havnen.DK", want: "mette@havnen.dk"},
		{name: "surrounding whitespace trimmed", input: "  mette@havnen.dk ", want: "mette@havnen.dk"},
		{name: "missing at sign", input: "mette.havnen.dk", wantErr: true},
		{name: "missing domain", input: "mette@", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := customer.NewEmail(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, customer.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, value := range []string{"customer", "admin"} {
		role, err := customer.NewRole(value)
		require.NoError(t, err)
		assert.Equal(t, value, role.String())
	}

	_, err := customer.NewRole("superuser")
	assert.ErrorIs(t, err, customer.ErrInvalidRole)
}

func TestNewDiscountGroup(t *testing.T) {
	t.Run("valid percentage", func(t *testing.T) {
		g, err := customer.NewDiscountGroup(uuid.New(), "Guld", "#FFD700", 10, true)
		require.NoError(t, err)
		assert.Equal(t, "Guld", g.Name())
		assert.Equal(t, 10.0, g.PercentOff())
		assert.True(t, g.IsActive())
	})

	t.Run("percentage out of range", func(t *testing.T) {
		_, err := customer.NewDiscountGroup(uuid.New(), "Guld", "", -1, true)
		assert.ErrorIs(t, err, customer.ErrInvalidGroupPercent)

		_, err = customer.NewDiscountGroup(uuid.New(), "Guld", "", 101, true)
		assert.ErrorIs(t, err, customer.ErrInvalidGroupPercent)
	})
}

func TestNewCustomer(t *testing.T) {
	email, err := customer.NewEmail("mette@havnen.dk")
	require.NoError(t, err)
	group, err := customer.NewDiscountGroup(uuid.New(), customer.DefaultGroupName, "", 0, true)
	require.NoError(t, err)

	c := customer.NewCustomer(email, "hashed", "Restaurant Havnen ApS", "Mette Jensen", "+45 22 33 44 55", customer.RoleCustomer, group)

	assert.NotEqual(t, uuid.Nil, c.ID())
	assert.Equal(t, email, c.Email())
	assert.Equal(t, customer.RoleCustomer, c.Role())
	assert.Equal(t, group, c.Group())
	assert.True(t, c.IsActive())
}
