package patient

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/patientdesk/internal/platform/auth"
	"github.com/ehr/patientdesk/pkg/binding"
	"github.com/ehr/patientdesk/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole(auth.RolePhysician, auth.RoleNurse))
	readGroup.GET("/patients", h.ListPatients)

	writeGroup := api.Group("", auth.RequireRole(auth.RoleNurse))
	writeGroup.POST("/patients", h.RegisterPatient)
}

// RegisterRequest is the body of POST /patients. ID is a pointer so a missing
// id can be told apart from id 0.
type RegisterRequest struct {
	ID      *int   `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Disease string `json:"disease"`
}

func (h *Handler) RegisterPatient(c echo.Context) error {
	var req RegisterRequest
	if err := binding.Bind(c, &req); err != nil {
		return err
	}
	if req.ID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	rec := h.svc.Register(c.Request().Context(), *req.ID, req.Name, req.Age, req.Disease)
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	all := h.svc.ListAll(c.Request().Context())
	return c.JSON(http.StatusOK, pagination.NewResponse(pagination.Window(all, pg), len(all), pg.Limit, pg.Offset))
}
