package appointment

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
	readGroup := api.Group("", auth.RequireRole(auth.RolePhysician, auth.RoleNurse))
	readGroup.GET("/appointments", h.GetStatus)

	writeGroup := api.Group("", auth.RequireRole(auth.RoleNurse))
	writeGroup.POST("/appointments", h.Schedule)
	writeGroup.POST("/appointments/next", h.ProcessNext)
}

type ScheduleRequest struct {
	PatientID *int `json:"patient_id"`
}

type ScheduleResponse struct {
	PatientID int    `json:"patient_id"`
	Status    Status `json:"queue"`
}

func (h *Handler) Schedule(c echo.Context) error {
	var req ScheduleRequest
	if err := binding.Bind(c, &req); err != nil {
		return err
	}
	if req.PatientID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	if err := h.svc.Schedule(c.Request().Context(), *req.PatientID); err != nil {
		return echo.NewHTTPError(bounded.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, ScheduleResponse{PatientID: *req.PatientID, Status: h.svc.Status()})
}

func (h *Handler) ProcessNext(c echo.Context) error {
	id, err := h.svc.ProcessNext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(bounded.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int{"patient_id": id})
}

func (h *Handler) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Status())
}
