package emergency

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
	// Triage is open to every clinical role.
	group := api.Group("", auth.RequireRole(auth.RolePhysician, auth.RoleNurse))
	group.GET("/emergencies", h.GetStatus)
	group.POST("/emergencies", h.Admit)
	group.POST("/emergencies/next", h.TreatNext)
}

type AdmitRequest struct {
	PatientID *int `json:"patient_id"`
	Severity  *int `json:"severity"`
}

func (h *Handler) Admit(c echo.Context) error {
	var req AdmitRequest
	if err := binding.Bind(c, &req); err != nil {
		return err
	}
	if req.PatientID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	if req.Severity == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "severity is required")
	}
	if err := h.svc.Admit(c.Request().Context(), *req.PatientID, *req.Severity); err != nil {
		return echo.NewHTTPError(bounded.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, Case{Severity: *req.Severity, PatientID: *req.PatientID})
}

func (h *Handler) TreatNext(c echo.Context) error {
	cs, err := h.svc.TreatNext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(bounded.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, cs)
}

func (h *Handler) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Status())
}
