package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "courtledger/internal/platform/errors"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/api/causelist", nil)

	RespondOK(rec, req, map[string]string{"case_number": "WP 12345/2024"})

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.StatusCode != stdhttp.StatusOK || env.Status != "OK" {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Error != "" {
		t.Fatalf("unexpected error field: %q", env.Error)
	}
}

func TestRespondErrorMapsCode(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/api/causelist", nil)

	RespondError(rec, req, perr.NotFoundf("no listing for WP 1/2024"))

	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Code != perr.ErrorCodeNotFound {
		t.Fatalf("code = %d", env.Code)
	}
	if env.Error != "no listing for WP 1/2024" {
		t.Fatalf("error = %q", env.Error)
	}
}

func TestHandleReturnStyle(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response {
		return OK(map[string]int{"updated": 3})
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(stdhttp.MethodPost, "/api/sync", nil))

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandleErrorBody(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response {
		return Error(perr.Adapterf("portal unreachable"))
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(stdhttp.MethodPost, "/api/sync", nil))

	if rec.Code != stdhttp.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Code != perr.ErrorCodeAdapter {
		t.Fatalf("code = %d", env.Code)
	}
}

func TestHandleNoContent(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response { return NoContent() })
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(stdhttp.MethodDelete, "/api/thing", nil))

	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("204 must have empty body, got %q", rec.Body.String())
	}
}

func TestListEnvelope(t *testing.T) {
	resp := List([]string{"a", "b"}, 10, 2, 2)
	rec := httptest.NewRecorder()
	Handle(func(*stdhttp.Request) Response { return resp })(rec,
		httptest.NewRequest(stdhttp.MethodGet, "/api/causelist", nil))

	var env struct {
		Data struct {
			Items []string `json:"items"`
			Page  Page     `json:"page"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.Items) != 2 || env.Data.Page.Total != 10 || env.Data.Page.Page != 2 {
		t.Fatalf("list = %+v", env.Data)
	}
}
