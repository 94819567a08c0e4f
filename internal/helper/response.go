// Package helper holds the request binding and JSON response helpers shared by
// the HTTP handlers.
package helper

import (
	"errors"
	"log"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/leebenson/conform"
	"gorm.io/gorm"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Bind parses the JSON body into req, applies its conform tags and validates
// it. When ok is false the 400 response has been written and err is what the
// handler should return.
func Bind(c *fiber.Ctx, req interface{}) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, BadRequest(c, "Invalid request body")
	}
	if err := conform.Strings(req); err != nil {
		return false, BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return false, ValidationError(c, err)
	}
	return true, nil
}

func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return BadRequest(c, "Invalid input")
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
}

func BadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func ServerError(c *fiber.Ctx, err error) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// FindError maps a lookup failure to 404 {message} or 500 {error}.
func FindError(c *fiber.Ctx, err error, notFound string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": notFound})
	}
	return ServerError(c, err)
}

func Created(c *fiber.Ctx, id uint, msg string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": msg})
}

func Done(c *fiber.Ctx, id uint, msg string) error {
	return c.JSON(fiber.Map{"id": id, "message": msg})
}

// ParamID reads a positive integer route parameter.
func ParamID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func InvalidID(c *fiber.Ctx) error {
	return BadRequest(c, "Invalid id")
}
