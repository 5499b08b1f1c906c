package middleware

import (
	"errors"
	"time"

	"taproom/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records every request on m, labelled by its route pattern so ids
// do not explode the label space. Requests no route matched are labelled
// unmatched.
func Metrics(m *metrics.HTTPMetrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}
		route := ""
		if r := c.Route(); r != nil && r.Path != "/" {
			route = r.Path
		}
		m.Observe(c.Method(), route, status, time.Since(start))
		return err
	}
}
