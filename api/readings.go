package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/insulinpump/readings/errors"
	"github.com/insulinpump/readings/readings"
)

func RegisterHandlers(e *echo.Echo, h *Handler) {
	g := e.Group("/api/readings")
	g.GET("", h.ListReadings)
	g.POST("", h.CreateReading)
	g.GET("/requiring-action", h.ListReadingsRequiringAction)
	g.GET("/status/:status", h.ListReadingsByStatus)
	g.GET("/device/:deviceId", h.ListReadingsByDevice)
	g.GET("/device/:deviceId/latest", h.GetLatestReadingByDevice)
	g.GET("/device/:deviceId/timerange", h.ListReadingsByDeviceAndTimeRange)
	g.GET("/device/:deviceId/statistics", h.GetGlucoseStatistics)
	g.GET("/patient/:patientId", h.ListReadingsByPatient)
	g.GET("/:id", h.GetReading)
	g.PUT("/:id", h.UpdateReading)
	g.DELETE("/:id", h.DeleteReading)
}

func (h *Handler) ListReadings(ec echo.Context) error {
	ctx := ec.Request().Context()

	offset, err := optionalIntParam(ec, "offset")
	if err != nil {
		return err
	}
	limit, err := optionalIntParam(ec, "limit")
	if err != nil {
		return err
	}

	list, err := h.readings.List(ctx, pagination(offset, limit))
	if err != nil {
		return domainError(err)
	}
	return ec.JSON(http.StatusOK, NewReadingDetailsDtos(list))
}

func (h *Handler) CreateReading(ec echo.Context) error {
	ctx := ec.Request().Context()

	dto := ReadingCreateDto{}
	if err := ec.Bind(&dto); err != nil {
		return errors.BadRequest
	}
	reading, err := NewReading(dto)
	if err != nil {
		return err
	}

	created, err := h.readings.Create(ctx, reading)
	if err != nil {
		return domainError(err)
	}
	return ec.JSON(http.StatusCreated, NewReadingDetailsDto(created))
}

func (h *Handler) GetReading(ec echo.Context) error {
	ctx := ec.Request().Context()

	reading, err := h.readings.Get(ctx, ec.Param("id"))
	if err != nil {
		return domainError(err)
	}
	return ec.JSON(http.StatusOK, NewReadingDetailsDto(reading))
}

func (h *Handler) UpdateReading(ec echo.Context) error {
	ctx := ec.Request().Context()

	dto := ReadingCreateDto{}
	if err := ec.Bind(&dto); err != nil {
		return errors.BadRequest
	}
	reading, err := NewReading(dto)
	if err != nil {
		return err
	}

	updated, err := h.readings.Update(ctx, ec.Param("id"), reading)
	if err != nil {
		return domainError(err)
	}
	return ec.JSON(http.StatusOK, NewReadingDetailsDto(updated))
}

func (h *Handler) DeleteReading(ec echo.Context) error {
	ctx := ec.Request().Context()

	if err := h.readings.Delete(ctx, ec.Param("id")); err != nil {
		return domainError(err)
	}
	return ec.NoContent(http.StatusNoContent)
}

func (h *Handler) ListReadingsByDevice(ec echo.Context) error {
	ctx := ec.Request().Context()

	deviceId, err := idParam(ec, "deviceId")
	if err != nil {
		return err
	}

	list, err := h.readings.ListByDevice(ctx, deviceId)
	if err != nil {
		return domainError(err)
	}
	return ec.JSON(http.StatusOK, NewReadingDetailsDtos(list))
}

func (h *Handler) ListReadingsByPatient(ec echo.Context) error {
	ctx := ec.Request().Context()

	patientId, err := idParam(ec, "patientId")
	if err != nil {
		return err
	}

	list, err := h.readings.ListByPatient(ctx, patientId)
	if err != nil {
		return domainError(err)
	}
	return ec.JSON(http.StatusOK, NewReadingDetailsDtos(list))
}

func (h *Handler) ListReadingsByStatus(ec echo.Context) error {
	ctx := ec.Request().Context()

	status, err := readings.ParseReadingStatus(ec.Param("status"))
	if err != nil {
		return errors.WithCode(http.StatusBadRequest, err)
	}

	list, err := h.readings.ListByStatus(ctx, status)
	if err != nil {
		return domainError(err)
	}
	return ec.JSON(http.StatusOK, NewReadingDetailsDtos(list))
}

func (h *Handler) ListReadingsRequiringAction(ec echo.Context) error {
	ctx := ec.Request().Context()

	list, err := h.readings.ListRequiringAction(ctx)
	if err != nil {
		return domainError(err)
	}
	return ec.JSON(http.StatusOK, NewReadingDetailsDtos(list))
}

func (h *Handler) GetLatestReadingByDevice(ec echo.Context) error {
	ctx := ec.Request().Context()

	deviceId, err := idParam(ec, "deviceId")
	if err != nil {
		return err
	}

	reading, err := h.readings.GetLatestByDevice(ctx, deviceId)
	if err != nil {
		return domainError(err)
	}
	return ec.JSON(http.StatusOK, NewReadingDetailsDto(reading))
}

func (h *Handler) ListReadingsByDeviceAndTimeRange(ec echo.Context) error {
	ctx := ec.Request().Context()

	deviceId, err := idParam(ec, "deviceId")
	if err != nil {
		return err
	}
	start, end, err := timeRangeParams(ec)
	if err != nil {
		return err
	}

	list, err := h.readings.ListByDeviceAndTimeRange(ctx, deviceId, start, end)
	if err != nil {
		return domainError(err)
	}
	return ec.JSON(http.StatusOK, NewReadingDetailsDtos(list))
}

func (h *Handler) GetGlucoseStatistics(ec echo.Context) error {
	ctx := ec.Request().Context()

	deviceId, err := idParam(ec, "deviceId")
	if err != nil {
		return err
	}
	start, end, err := timeRangeParams(ec)
	if err != nil {
		return err
	}

	statistics, err := h.readings.Statistics(ctx, deviceId, start, end)
	if err != nil {
		return domainError(err)
	}
	return ec.JSON(http.StatusOK, NewGlucoseStatisticsDto(statistics))
}

func idParam(ec echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ec.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.BadRequest
	}
	return id, nil
}

func optionalIntParam(ec echo.Context, name string) (*int, error) {
	raw := ec.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return nil, errors.BadRequest
	}
	return &value, nil
}

// timeRangeParams parses the closed [start, end] window. Both bounds are
// required, RFC 3339 formatted, and must be ordered.
func timeRangeParams(ec echo.Context) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, ec.QueryParam("start"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest
	}
	end, err := time.Parse(time.RFC3339, ec.QueryParam("end"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, errors.BadRequest
	}
	return start, end, nil
}
