package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Delivered} {
			t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(4), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "confirmed", order.Confirmed.String())
		assert.Equal(t, "delivered", order.Delivered.String())
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every valid name", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Delivered} {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "Pending", "cancelled"} {
			_, err := order.ParseStatus(name)

			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", name)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	all := []order.Status{order.Unknown, order.Pending, order.Confirmed, order.Delivered}
	allowed := map[[2]order.Status]bool{
		{order.Pending, order.Confirmed}:   true,
		{order.Confirmed, order.Delivered}: true,
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				next, err := from.TransitionTo(to)

				if allowed[[2]order.Status{from, to}] {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					return
				}

				var transitionErr *order.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.ErrorIs(t, err, order.ErrInvalidTransition)
				assert.Equal(t, from, transitionErr.Current)
				assert.Equal(t, to, transitionErr.Requested)
				assert.Equal(t, order.Unknown, next)
			})
		}
	}
}

func TestStatus_ConfirmAndDeliver(t *testing.T) {
	t.Run("should walk the full path", func(t *testing.T) {
		s, err := order.Pending.Confirm()
		require.NoError(t, err)

		s, err = s.Deliver()
		require.NoError(t, err)

		assert.Equal(t, order.Delivered, s)
	})

	t.Run("should not skip confirmation", func(t *testing.T) {
		_, err := order.Pending.Deliver()

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.EqualError(t, err, "invalid status transition: cannot change order from pending to delivered")
	})
}
