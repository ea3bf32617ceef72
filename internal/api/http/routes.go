package httpapi

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/sundial-app/sundial/internal/locale"
	"github.com/sundial-app/sundial/internal/store"
	"github.com/sundial-app/sundial/internal/suncal"
)

var validate = validator.New()

// Defaults are the day-window values applied when a request leaves
// them out.
type Defaults struct {
	PastDays   int
	FutureDays int
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *suncal.Service, mem *store.MemoryStore, msgs *locale.Table, defaults Defaults) {
	v1 := app.Group("/api/v1")

	v1.Get("/sun/calendar", func(c *fiber.Ctx) error {
		req, err := parseCalendarQuery(c, defaults)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if strings.TrimSpace(req.Place) == "" {
			// Validated before any outbound call; no request is made
			// for a blank place.
			return fiber.NewError(fiber.StatusBadRequest, msgs.ErrGeocodeEmpty)
		}

		seq := mem.NextSeq()
		view, err := service.Lookup(c.Context(), req.Place, req.PastDays, req.FutureDays)
		if err != nil {
			return mapError(err, msgs)
		}
		mem.Save(store.SlotPrimary, seq, view)

		return c.JSON(view)
	})

	v1.Get("/sun/home", func(c *fiber.Ctx) error {
		view, err := mem.Latest(store.SlotPrimary)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no home calendar fetched yet")
			}
			return mapError(err, msgs)
		}
		return c.JSON(view)
	})

	v1.Get("/sun/compare", func(c *fiber.Ctx) error {
		req, err := parseCompareQuery(c, defaults)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if strings.TrimSpace(req.Base) == "" || strings.TrimSpace(req.Other) == "" {
			return fiber.NewError(fiber.StatusBadRequest, msgs.ErrGeocodeEmpty)
		}

		seq := mem.NextSeq()
		view, err := service.CompareLookup(c.Context(), req.Base, req.Other, req.PastDays, req.FutureDays)
		if err != nil {
			return mapError(err, msgs)
		}
		mem.Save(store.SlotComparison, seq, view.Other)

		return c.JSON(view)
	})
}

// mapError translates pipeline error kinds into HTTP responses with
// localized messages. Anything unrecognized falls back to a generic
// message rather than leaking internals.
func mapError(err error, msgs *locale.Table) *fiber.Error {
	switch {
	case errors.Is(err, suncal.ErrGeocodeEmpty):
		return fiber.NewError(fiber.StatusNotFound, msgs.ErrGeocodeEmpty)
	case errors.Is(err, suncal.ErrGeocodeFailed):
		return fiber.NewError(fiber.StatusBadGateway, msgs.ErrGeocodeFailed)
	case errors.Is(err, suncal.ErrCalendarFailed):
		return fiber.NewError(fiber.StatusBadGateway, msgs.ErrCalendarFailed)
	case errors.Is(err, suncal.ErrMissingCalendarData):
		return fiber.NewError(fiber.StatusBadGateway, msgs.ErrMissingDaily)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, msgs.ErrUnknown)
	}
}

// calendarQuery holds query parameters for a single-location lookup.
type calendarQuery struct {
	Place      string `validate:"required"`
	PastDays   int    `validate:"gte=0"`
	FutureDays int    `validate:"gte=0"`
}

func parseCalendarQuery(c *fiber.Ctx, defaults Defaults) (calendarQuery, error) {
	q := calendarQuery{
		Place:      c.Query("place"),
		PastDays:   c.QueryInt("past_days", defaults.PastDays),
		FutureDays: c.QueryInt("future_days", defaults.FutureDays),
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// compareQuery holds query parameters for a two-location comparison.
type compareQuery struct {
	Base       string `validate:"required"`
	Other      string `validate:"required"`
	PastDays   int    `validate:"gte=0"`
	FutureDays int    `validate:"gte=0"`
}

func parseCompareQuery(c *fiber.Ctx, defaults Defaults) (compareQuery, error) {
	q := compareQuery{
		Base:       c.Query("base"),
		Other:      c.Query("other"),
		PastDays:   c.QueryInt("past_days", defaults.PastDays),
		FutureDays: c.QueryInt("future_days", defaults.FutureDays),
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}
