package handlers_test

import (
	"net/http"
	"testing"
	"time"
)

func TestConsultationAnonymousSubmission(t *testing.T) {
	app, _ := newTestApp(t)

	preferred := time.Now().Add(96 * time.Hour).UTC().Format(time.RFC3339)
	code, payload := doRequest(t, app, http.MethodPost, "/api/consultations", "", map[string]interface{}{
		"name":          "Walk-in Visitor",
		"email":         "visitor@example.com",
		"phone":         "+8801711111111",
		"message":       "Interested in UK universities",
		"preferredDate": preferred,
	})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", code, payload)
	}
	consultation := payloadData(t, payload)["consultation"].(map[string]interface{})
	if consultation["status"] != "NEW" {
		t.Errorf("expected status NEW, got %v", consultation["status"])
	}
	if consultation["userId"] != nil {
		t.Errorf("anonymous booking must not carry a user id, got %v", consultation["userId"])
	}
}

func TestConsultationAuthenticatedSubmission(t *testing.T) {
	app, _ := newTestApp(t)
	token := registerUser(t, app, "Amina Yusuf", "amina@example.com")

	code, payload := doRequest(t, app, http.MethodPost, "/api/consultations", token, map[string]interface{}{
		"name":  "Amina Yusuf",
		"email": "amina@example.com",
	})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", code, payload)
	}
	consultation := payloadData(t, payload)["consultation"].(map[string]interface{})
	if consultation["userId"] == nil {
		t.Error("authenticated booking should be linked to the user")
	}

	code, payload = doRequest(t, app, http.MethodGet, "/api/consultations/my", token, nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	consultations := payloadData(t, payload)["consultations"].([]interface{})
	if len(consultations) != 1 {
		t.Fatalf("expected 1 own consultation, got %d", len(consultations))
	}
}

func TestConsultationValidation(t *testing.T) {
	app, _ := newTestApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/api/consultations", "", map[string]interface{}{
		"name": "No Email",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing email, got %d", code)
	}

	code, _ = doRequest(t, app, http.MethodPost, "/api/consultations", "", map[string]interface{}{
		"name":          "Bad Date",
		"email":         "bad@example.com",
		"preferredDate": "tomorrow-ish",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", code)
	}

	code, _ = doRequest(t, app, http.MethodGet, "/api/consultations/my", "", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 listing without token, got %d", code)
	}
}
