package utils

import "github.com/gofiber/fiber/v2"

// JsonResponse writes the API envelope used by every endpoint:
// {status: "success", message?, data?}. Error responses are produced by the
// central fiber error handler with the same shape and status "error".
func JsonResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	resp := fiber.Map{"status": "success"}
	if message != "" {
		resp["message"] = message
	}
	if data != nil {
		resp["data"] = data
	}
	return c.Status(statusCode).JSON(resp)
}
