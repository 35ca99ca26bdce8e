package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/project-elevate/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := models.LoginResponse{Token: "t", User: models.UserInfo{ID: "1", Role: models.RoleManager}}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_EmptySliceIsArray(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, []models.Assessment{}, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != "[]" {
		t.Errorf("expected body '[]', got '%s'", w.Body.String())
	}
}

func TestWriteJSON_AssessmentFieldNames(t *testing.T) {
	w := httptest.NewRecorder()
	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	_, err := WriteJSON(w, models.Assessment{CompanyName: "Acme Corp", DueDate: due}, http.StatusOK)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, key := range []string{"companyName", "priority", "status", "percentComplete", "dueDate", "assignedTo", "createdAt", "updatedAt"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q in body %s", key, w.Body.String())
		}
	}
}

func TestWriteMessage(t *testing.T) {
	w := httptest.NewRecorder()

	WriteMessage(w, "invalid credentials", http.StatusUnauthorized)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if w.Body.String() != `{"message":"invalid credentials"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
