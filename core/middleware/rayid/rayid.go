// Package rayid assigns every request a RayID for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response (and optional request) header carrying the RayID.
const HeaderName = "X-Ray-ID"

// LocalsKey is the Fiber locals key the RayID is stored under.
const LocalsKey = "ray_id"

// New creates the RayID middleware. An incoming RayID header is kept, otherwise a
// new UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
