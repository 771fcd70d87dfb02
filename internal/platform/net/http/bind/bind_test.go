package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "courtledger/internal/platform/errors"
)

type syncReq struct {
	CourtType string `json:"court_type" validate:"required"`
	DateFrom  string `json:"date_from" validate:"required,dateymd"`
	Days      int    `json:"days" validate:"omitempty,min=1,max=30"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/sync", strings.NewReader(body))
}

func TestParseJSONValid(t *testing.T) {
	in, err := ParseJSON[syncReq](post(`{"court_type":"High Court","date_from":"2026-09-01","days":7}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if in.CourtType != "High Court" || in.DateFrom != "2026-09-01" || in.Days != 7 {
		t.Fatalf("parsed = %+v", in)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	_, err := ParseJSON[syncReq](post(""))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v, want json error", err)
	}
}

func TestParseJSONEmptyBodyToleratedForGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/causelist", strings.NewReader(""))
	if _, err := ParseJSON[syncReq](req); err != nil {
		t.Fatalf("GET with empty body should parse to zero value, got %v", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	_, err := ParseJSON[syncReq](post(`{"court_type":"High Court","date_from":"2026-09-01","bogus":1}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v, want json error", err)
	}
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON[syncReq](post(`{"court_type":`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v, want json error", err)
	}
}

func TestParseJSONTrailingData(t *testing.T) {
	_, err := ParseJSON[syncReq](post(`{"court_type":"x","date_from":"2026-09-01"} {"more":1}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v, want json error", err)
	}
}

func TestParseJSONRequiredValidation(t *testing.T) {
	_, err := ParseJSON[syncReq](post(`{"date_from":"2026-09-01"}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	e, _ := perr.As(err)
	if e.Field() != "court_type" {
		t.Fatalf("field = %q, want court_type", e.Field())
	}
}

func TestParseJSONDateYMD(t *testing.T) {
	_, err := ParseJSON[syncReq](post(`{"court_type":"High Court","date_from":"01-09-2026"}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if !strings.Contains(err.Error(), "YYYY-MM-DD") {
		t.Fatalf("message should mention the expected form, got %q", err.Error())
	}
}

func TestParseJSONRangeValidation(t *testing.T) {
	_, err := ParseJSON[syncReq](post(`{"court_type":"High Court","date_from":"2026-09-01","days":90}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}
