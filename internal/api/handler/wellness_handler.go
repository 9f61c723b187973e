package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wellness/portal/internal/api/metrics"
	"github.com/wellness/portal/internal/core/ports"
)

type WellnessHandler struct {
	service ports.WellnessService
}

func NewWellnessHandler(service ports.WellnessService) *WellnessHandler {
	return &WellnessHandler{service: service}
}

// BMI handles POST /wellness/bmi.
//
// @Summary      Compute body mass index
// @Tags         wellness
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bmiRequest  true  "Height in cm and weight in kg"
// @Success      200   {object}  bmiResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /wellness/bmi [post]
func (h *WellnessHandler) BMI(c echo.Context) error {
	var req bmiRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	bmi, err := h.service.BMI(req.HeightCm, req.WeightKg)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bmiResponse{BMI: bmi})
}

// Obesity handles POST /wellness/obesity.
//
// @Summary      Classify obesity level
// @Tags         wellness
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      obesityRequest  true  "Questionnaire"
// @Success      200   {object}  obesityResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /wellness/obesity [post]
func (h *WellnessHandler) Obesity(c echo.Context) error {
	var req obesityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.service.Classify(c.Request().Context(), req.toInput())
	if err != nil {
		metrics.ClassificationsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.ClassificationsTotal.WithLabelValues(res.Label).Inc()

	return c.JSON(http.StatusOK, obesityResponse{BMI: res.BMI, Class: res.Class, Label: res.Label})
}
