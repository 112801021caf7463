package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request, termasuk request-id yang dipasang
// middleware timing di main (kolom reqid kosong untuk hit sebelum middleware itu).
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] reqid=${locals:reqid} ${ip} ${method} ${path} → ${status} ${latency}\n",
	})
}
