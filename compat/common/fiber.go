package common

import (
	"context"
	"errors"
	"strings"

	"github.com/bsthun/gut"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.scnd.dev/open/lvglgen/compat/response"
	"go.scnd.dev/open/lvglgen/package/erroring"
	"go.uber.org/fx"
)

type FiberConfig interface {
	GetWebListen() *string
	GetWebBodyLimit() int
}

func Fiber(lc fx.Lifecycle, config FiberConfig) *fiber.App {
	app := NewFiber(config)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				err := app.Listen(*config.GetWebListen(), fiber.ListenConfig{
					DisableStartupMessage: true,
				})
				if err != nil {
					gut.Fatal("unable to listen", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			_ = app.Shutdown()
			return nil
		},
	})

	return app
}

// NewFiber builds the application without binding it to a lifecycle.
func NewFiber(config FiberConfig) *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler:  FiberError,
		StrictRouting: true,
		BodyLimit:     config.GetWebBodyLimit(),
	})
}

func FiberError(c fiber.Ctx, err error) error {
	// * construct success
	success := false

	// * case of `*fiber.Error`
	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return c.Status(fiberError.Code).JSON(&response.ErrorResponse{
			Success: &success,
			Message: &fiberError.Message,
		})
	}

	// * case of `validator.ValidationErrors`
	var validatorErr validator.ValidationErrors
	if errors.As(err, &validatorErr) {
		var lists []string
		for _, err := range validatorErr {
			lists = append(lists, err.Field()+" ("+err.Tag()+")")
		}

		message := strings.Join(lists, ", ")

		return c.Status(fiber.StatusBadRequest).JSON(&response.ErrorResponse{
			Success: gut.Ptr(false),
			Message: gut.Ptr("validation failed on " + message),
			Error:   gut.Ptr(validatorErr.Error()),
		})
	}

	// * case of `*erroring.Error`
	var chainError *erroring.Error
	if errors.As(err, &chainError) {
		status := fiber.StatusInternalServerError
		switch erroring.TypeOf(err) {
		case erroring.DimensionTypeFormat, erroring.DimensionTypeValidation:
			status = fiber.StatusBadRequest
		}

		var cause *string
		if chainError.Unwrap() != nil {
			cause = gut.Ptr(chainError.Unwrap().Error())
		}
		return c.Status(status).JSON(&response.ErrorResponse{
			Success: &success,
			Code:    gut.Ptr(string(chainError.Type())),
			Message: gut.Ptr(chainError.Message()),
			Error:   cause,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(&response.ErrorResponse{
		Success: gut.Ptr(false),
		Message: gut.Ptr("unknown server error"),
		Error:   gut.Ptr(err.Error()),
	})
}
