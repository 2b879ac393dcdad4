package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func get(t *testing.T, path string) (int, string) {
	t.Helper()
	app := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestHomeShowsSeededListings(t *testing.T) {
	status, body := get(t, "/")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	for _, want := range []string{"Maruti Swift", "Hyundai Creta", "BMW 7 Series"} {
		if !strings.Contains(body, want) {
			t.Errorf("home missing seeded car %q", want)
		}
	}
}

func TestHomeFilterNarrowsCardsNotFacets(t *testing.T) {
	status, body := get(t, "/?city=Surat")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if strings.Contains(body, "Maruti Swift") {
		t.Error("Rajkot car shown under Surat filter")
	}
	if !strings.Contains(body, "Hyundai Creta") {
		t.Error("Surat car filtered out")
	}
	// Selector options still cover every city in the full set.
	if !strings.Contains(body, `value="Rajkot"`) {
		t.Error("city facet lost Rajkot while filtered to Surat")
	}
}

func TestHomePriceBandFilter(t *testing.T) {
	status, body := get(t, "/?price=Premium")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(body, "BMW 7 Series") {
		t.Error("premium car missing")
	}
	if strings.Contains(body, "Maruti Swift") || strings.Contains(body, "Hyundai Creta") {
		t.Error("non-premium cars shown under Premium band")
	}
}

func TestContactPageRoundTrip(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(formReq("/contact", "name=Asha&email=asha%40example.com&message=hello"))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(b), "Your message has been sent!") {
		t.Fatalf("expected sent confirmation, got %d body=%s", resp.StatusCode, b)
	}

	resp, err = app.Test(formReq("/contact", "name=Asha&email=&message=hello"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty email: expected 400, got %d", resp.StatusCode)
	}
}
