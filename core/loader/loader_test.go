package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"catalog-impex/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	if f.err != nil {
		return f.err
	}
	f.loaded = true
	app.Get("/"+f.name, func(c *fiber.Ctx) error { return c.SendString(f.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("Skips disabled features", func(t *testing.T) {
		enabled := &stubFeature{name: "importer", enabled: true}
		disabled := &stubFeature{name: "integrity", enabled: false}

		mgr := loader.NewManager()
		mgr.Register(enabled)
		mgr.Register(disabled)

		app := fiber.New()
		require.NoError(t, mgr.LoadAll(app))

		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
		assert.Len(t, mgr.Features(), 2)

		resp, err := app.Test(httptest.NewRequest("GET", "/importer", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Stops at first error", func(t *testing.T) {
		broken := &stubFeature{name: "broken", enabled: true, err: errors.New("no db")}
		after := &stubFeature{name: "after", enabled: true}

		mgr := loader.NewManager()
		mgr.Register(broken)
		mgr.Register(after)

		err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "broken")
		assert.False(t, after.loaded)
	})
}
