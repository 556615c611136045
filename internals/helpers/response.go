package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Error categories surfaced to the caller so the UI can render the failure
// without guessing: authorization, domain, import, infrastructure, validation.
const (
	CategoryAuthorization  = "authorization"
	CategoryDomain         = "domain"
	CategoryImport         = "import"
	CategoryInfrastructure = "infrastructure"
	CategoryValidation     = "validation"
)

// ✅ Success response (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success response with custom code (e.g. 201 created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Plain error response
func Error(c *fiber.Ctx, code int, category, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":     code,
		"status":   "error",
		"category": category,
		"message":  message,
	})
}

// ✅ Error response carrying extra detail (field map, row errors, ...)
func ErrorWithDetails(c *fiber.Ctx, code int, category, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":     code,
		"status":   "error",
		"category": category,
		"message":  message,
		"errors":   errors,
	})
}

// Shorthands per category.
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, CategoryAuthorization, message)
}

func DomainError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnprocessableEntity, CategoryDomain, message)
}

func InfraError(c *fiber.Ctx, err error) error {
	return Error(c, fiber.StatusInternalServerError, CategoryInfrastructure, err.Error())
}

// ✅ validator.v10 errors rendered as a field map
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, CategoryValidation, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, CategoryValidation, "Validation failed", errorsMap)
}
