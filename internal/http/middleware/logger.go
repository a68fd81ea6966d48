package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Logger logs each HTTP request as one JSON object with request_id,
// method, path, status and latency in milliseconds.
func Logger() fiber.Handler {
	return LoggerWithOutput(nil)
}

// LoggerWithOutput is Logger with the log destination overridable for
// tests. A nil writer keeps logrus' default output.
func LoggerWithOutput(w io.Writer) fiber.Handler {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if w != nil {
		log.SetOutput(w)
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Process request
		err := c.Next()

		// Collect fields after handler executed to capture final status
		rid, _ := c.Locals(RequestIDLocalKey).(string)

		log.WithFields(logrus.Fields{
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency":    float64(time.Since(start).Milliseconds()),
		}).Info("request")

		return err
	}
}
