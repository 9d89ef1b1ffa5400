// Package rayid assigns a unique ray ID to every incoming request.
//
// The ID is stored in c.Locals("ray_id") and echoed in the X-Ray-Id response
// header. An ID supplied by the client in X-Ray-Id is reused so traces can
// span services.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header used to propagate the ray ID.
const HeaderName = "X-Ray-Id"

// New creates the ray ID middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
