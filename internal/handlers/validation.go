package handlers

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"taproom/internal/models"
	pkgerrors "taproom/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("beer_style", validBeerStyle); err != nil {
		panic(err)
	}
	return v
}

func validBeerStyle(fl validator.FieldLevel) bool {
	style, ok := fl.Field().Interface().(models.BeerStyle)
	return ok && style.Valid()
}

// decodeBody parses the JSON body into dest without validating it.
func decodeBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body").
			WithDetails(map[string]any{"error": err.Error()})
	}
	return nil
}

// decodeValidBody parses the JSON body into dest and checks its validate tags.
func decodeValidBody(c *fiber.Ctx, dest any) error {
	if err := decodeBody(c, dest); err != nil {
		return err
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := make([]map[string]string, 0, len(errs))
		for _, fieldErr := range errs {
			details = append(details, map[string]string{fieldErr.Field(): validationMessage(fieldErr)})
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "beer_style":
		return styleMessage()
	}
	return "is invalid"
}

func styleMessage() string {
	return fmt.Sprintf("must be one of %v", models.BeerStyles())
}

// queryInt reads an optional integer query parameter.
func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").
			WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}
