package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the caller's error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// The guard's purpose: a value object embedding it can only pass validation
// when built through its constructor, never as a zero value.
func TestConstructorGuard_EnforcesConstructorUsage(t *testing.T) {
	type price struct {
		amount int
		guard  guard.ConstructorGuard
	}

	errPriceNotConstructed := errors.New("price must be created via newPrice")

	newPrice := func(amount int) (price, error) {
		if amount < 0 {
			return price{}, errors.New("amount cannot be negative")
		}
		return price{
			amount: amount,
			guard:  guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("constructed value validates", func(t *testing.T) {
		p, err := newPrice(25000)
		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPriceNotConstructed))
		assert.Equal(t, 25000, p.amount)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p price
		err := p.guard.Validate(errPriceNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errPriceNotConstructed, err)
	})
}

func TestConstructorGuard_SafeToCopyAndShare(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("not constructed")

	gCopy := g
	require.NoError(t, gCopy.Validate(testError))

	done := make(chan struct{})
	for range 10 {
		go func() {
			for range 1000 {
				assert.NoError(t, g.Validate(testError))
			}
			done <- struct{}{}
		}()
	}
	for range 10 {
		<-done
	}
}
