package handlers

import (
	"errors"

	pkgerrors "taproom/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

// writeError maps err onto its HTTP status and writes the error envelope.
// Field validation failures are written as the bare list of field messages.
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Code())

	if fields, ok := typed.Details().([]map[string]string); ok && typed.Code() == pkgerrors.CodeValidation {
		return c.Status(meta.HTTPStatus).JSON(fields)
	}

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation, pkgerrors.CodeNotFound, pkgerrors.CodeConflict, pkgerrors.CodeUnauthorized:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	payload := errorEnvelope{Error: apiError{Code: string(typed.Code()), Message: msg}}
	if meta.DetailsAllowed {
		payload.Error.Details = typed.Details()
	}

	event := log.Warn()
	if meta.HTTPStatus >= fiber.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("error_code", string(typed.Code())).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request.error")

	return c.Status(meta.HTTPStatus).JSON(payload)
}

func notFound(c *fiber.Ctx, log zerolog.Logger, message string) error {
	return writeError(c, log, pkgerrors.New(pkgerrors.CodeNotFound, message))
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes or recovered panics, in the same envelope.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code := pkgerrors.CodeInternal
			switch fiberErr.Code {
			case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
				code = pkgerrors.CodeNotFound
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
				code = pkgerrors.CodeValidation
			case fiber.StatusUnauthorized:
				code = pkgerrors.CodeUnauthorized
			}
			return writeError(c, log, pkgerrors.Wrap(code, err, fiberErr.Message))
		}
		return writeError(c, log, err)
	}
}
