package visit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc := NewService(zerolog.Nop())
	h := NewHandler(svc)
	e := echo.New()
	return h, e
}

func postJSON(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_RecordAndPop(t *testing.T) {
	h, e := newTestHandler()

	c, rec := postJSON(e, `{"patient_id":31}`)
	if err := h.RecordVisit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	c, rec = postJSON(e, "")
	if err := h.PopLast(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"patient_id":31`) {
		t.Errorf("expected patient 31, got %s", rec.Body.String())
	}
}

func TestHandler_RecordVisit_MissingPatientID(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, `{}`)

	err := h.RecordVisit(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_RecordVisit_Full(t *testing.T) {
	h, e := newTestHandler()
	for i := 0; i < 10; i++ {
		if err := h.svc.Record(context.Background(), i); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	c, _ := postJSON(e, `{"patient_id":11}`)

	err := h.RecordVisit(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
}

func TestHandler_PopLast_Empty(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, "")

	err := h.PopLast(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_GetStatus(t *testing.T) {
	h, e := newTestHandler()
	_ = h.svc.Record(context.Background(), 2)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := h.GetStatus(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"depth":1`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestService_LastOnEmpty(t *testing.T) {
	svc := NewService(zerolog.Nop())
	if _, err := svc.Last(context.Background()); !errors.Is(err, ErrStackEmpty) {
		t.Errorf("expected ErrStackEmpty, got %v", err)
	}
}
