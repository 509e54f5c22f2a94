package voters

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mounted int
	err     error
}

func (a *fakeAPI) Mount(fiber.Router) error {
	a.mounted++
	return a.err
}

func TestMountAPI(t *testing.T) {
	newJob := func(released *int) *Aggregator {
		aggregator := &Aggregator{}
		aggregator.cleanupFuncs = append(aggregator.cleanupFuncs, func(context.Context) error {
			*released++
			return nil
		})
		return aggregator
	}

	t.Run("mounted on the http server", func(t *testing.T) {
		injector := do.New()
		do.ProvideValue(injector, fiber.New())
		var released int
		api := &fakeAPI{}

		require.NoError(t, mountAPI(context.Background(), injector, newJob(&released), api))
		assert.Equal(t, 1, api.mounted)
		assert.Zero(t, released)
	})

	t.Run("no http server", func(t *testing.T) {
		var released int
		api := &fakeAPI{}

		require.NoError(t, mountAPI(context.Background(), do.New(), newJob(&released), api))
		assert.Zero(t, api.mounted)
		assert.Zero(t, released)
	})

	t.Run("failed mount releases resources", func(t *testing.T) {
		injector := do.New()
		do.ProvideValue(injector, fiber.New())
		var released int
		api := &fakeAPI{err: errors.New("duplicate route")}

		err := mountAPI(context.Background(), injector, newJob(&released), api)
		assert.ErrorContains(t, err, "duplicate route")
		assert.Equal(t, 1, released)
	})
}
