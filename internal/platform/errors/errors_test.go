package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrs.New("boom")
	err := Wrap(cause, ErrorCodeDB, "insert failed")
	if !stderrs.Is(err, cause) {
		t.Fatal("wrapped cause not reachable via errors.Is")
	}
	if got := Root(err); got != cause {
		t.Fatalf("Root() = %v, want %v", got, cause)
	}
	if err.Error() != "insert failed: boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestCodeOfAndHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
		http int
	}{
		{NotFoundf("case %s", "WP 1/2024"), ErrorCodeNotFound, http.StatusNotFound},
		{InvalidArgf("bad range"), ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{Validationf("date required"), ErrorCodeValidation, http.StatusBadRequest},
		{DuplicateKeyf("listing"), ErrorCodeDuplicateKey, http.StatusConflict},
		{Adapterf("portal timeout"), ErrorCodeAdapter, http.StatusBadGateway},
		{Dispatchf("webhook 500"), ErrorCodeDispatch, http.StatusBadGateway},
		{Unavailablef("db down"), ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{DBf("tx failed"), ErrorCodeDB, http.StatusInternalServerError},
		{stderrs.New("opaque"), ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := CodeOf(c.err); got != c.code {
			t.Errorf("CodeOf(%v) = %d, want %d", c.err, got, c.code)
		}
		if got := HTTPStatus(c.err); got != c.http {
			t.Errorf("HTTPStatus(%v) = %d, want %d", c.err, got, c.http)
		}
	}
}

func TestWithFieldCopyOnWrite(t *testing.T) {
	base := Validationf("must be a date")
	withField := WithField(base, "date_from")

	be, _ := As(base)
	fe, _ := As(withField)
	if be.Field() != "" {
		t.Fatal("original mutated by WithField")
	}
	if fe.Field() != "date_from" {
		t.Fatalf("Field() = %q, want %q", fe.Field(), "date_from")
	}
}

func TestWithFieldPassthroughForForeignErrors(t *testing.T) {
	plain := stderrs.New("plain")
	if got := WithField(plain, "x"); got != plain {
		t.Fatal("foreign error should pass through unchanged")
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(Validationf("must not be empty"), "case_number"))
	if w.Code != ErrorCodeValidation || w.Field != "case_number" || w.Message != "must not be empty" {
		t.Fatalf("unexpected wire: %+v", w)
	}

	w = WireFrom(nil)
	if w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v, want zero", w)
	}

	w = WireFrom(stderrs.New("opaque"))
	if w.Code != ErrorCodeUnknown || w.Message != "opaque" {
		t.Fatalf("unexpected wire for foreign error: %+v", w)
	}
}

func TestWrapIf(t *testing.T) {
	if WrapIf(nil, ErrorCodeDB, "x") != nil {
		t.Fatal("WrapIf(nil) must be nil")
	}
	if err := WrapIf(stderrs.New("boom"), ErrorCodeDB, "x"); !IsCode(err, ErrorCodeDB) {
		t.Fatal("WrapIf should classify non-nil errors")
	}
}

func TestHTTPHelper(t *testing.T) {
	status, wire := HTTP(nil)
	if status != http.StatusOK || wire != (Wire{}) {
		t.Fatalf("HTTP(nil) = %d %+v", status, wire)
	}
	status, wire = HTTP(NotFoundf("gone"))
	if status != http.StatusNotFound || wire.Code != ErrorCodeNotFound {
		t.Fatalf("HTTP(not found) = %d %+v", status, wire)
	}
}
