package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "courtledger/internal/platform/errors"
	"courtledger/internal/platform/testkit"
)

func TestLogDispatcherNeverFails(t *testing.T) {
	d := NewLogDispatcher()
	if err := d.Notify(context.Background(), KindStatusChange, StatusChangePayload{
		CaseNumber: "WP 12345/2024",
		OldStatus:  "Listed",
		NewStatus:  "Disposed",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWebhookDispatcherPostsEnvelope(t *testing.T) {
	var got webhookEnvelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	d := NewWebhookDispatcher(WebhookOptions{URL: srv.URL})
	err := d.Notify(context.Background(), KindHearingReminder, ReminderPayload{
		CaseNumber:  "CWP 67890/2023",
		HearingDate: "2024-12-02",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != KindHearingReminder {
		t.Fatalf("kind = %s", got.Kind)
	}
	if got.SentAt == "" {
		t.Fatal("sent_at not stamped")
	}
}

func TestWebhookDispatcherNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := NewWebhookDispatcher(WebhookOptions{URL: srv.URL})
	err := d.Notify(context.Background(), KindStatusChange, StatusChangePayload{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !perr.IsCode(err, perr.ErrorCodeDispatch) {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
}

func TestWebhookDispatcherRequiresURL(t *testing.T) {
	testkit.MustPanic(t, func() { NewWebhookDispatcher(WebhookOptions{}) })
}
