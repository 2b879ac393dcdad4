package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestContactSubmit(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/contact",
		`{"name":"Asha","email":"asha@example.com","message":"Is the Creta still available?"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var out struct {
		Message   string `json:"message"`
		ContactID int64  `json:"contactId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.ContactID == 0 {
		t.Fatal("no contactId assigned")
	}
}

func TestContactRequiresAllFields(t *testing.T) {
	app := newTestApp(t)

	for _, payload := range []string{
		`{"email":"asha@example.com","message":"hi"}`,
		`{"name":"Asha","message":"hi"}`,
		`{"name":"Asha","email":"asha@example.com"}`,
		`{"name":"","email":"asha@example.com","message":"hi"}`,
	} {
		resp, err := app.Test(jsonReq("POST", "/api/contact", payload))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("payload %s: expected 400, got %d", payload, resp.StatusCode)
		}
	}
}
