package visit

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/patientdesk/internal/platform/auth"
	"github.com/ehr/patientdesk/internal/platform/bounded"
	"github.com/ehr/patientdesk/pkg/binding"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	group := api.Group("", auth.RequireRole(auth.RolePhysician, auth.RoleNurse))
	group.GET("/visits", h.GetStatus)
	group.POST("/visits", h.RecordVisit)
	group.POST("/visits/last", h.PopLast)
}

type RecordRequest struct {
	PatientID *int `json:"patient_id"`
}

func (h *Handler) RecordVisit(c echo.Context) error {
	var req RecordRequest
	if err := binding.Bind(c, &req); err != nil {
		return err
	}
	if req.PatientID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	if err := h.svc.Record(c.Request().Context(), *req.PatientID); err != nil {
		return echo.NewHTTPError(bounded.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]int{"patient_id": *req.PatientID})
}

func (h *Handler) PopLast(c echo.Context) error {
	id, err := h.svc.Last(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(bounded.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int{"patient_id": id})
}

func (h *Handler) GetStatus(c echo.Context) error {
	depth, capacity := h.svc.Depth()
	return c.JSON(http.StatusOK, map[string]int{"depth": depth, "capacity": capacity})
}
