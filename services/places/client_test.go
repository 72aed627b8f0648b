package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"betulbuzz/config"
	"betulbuzz/models"

	"go.uber.org/zap"
)

func newTestClient(serverURL string) *GooglePlacesClient {
	c := NewGooglePlacesClient(zap.NewNop())
	c.BaseURL = serverURL
	return c
}

func TestSearchParsesResults(t *testing.T) {
	config.AppConfig.GoogleAPIKey = "test-key"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("keyword") != "biryani" {
			t.Errorf("keyword = %q; want biryani", q.Get("keyword"))
		}
		if q.Get("radius") != "10000" {
			t.Errorf("radius = %q; want 10000", q.Get("radius"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"place_id": "p1", "name": "Biryani House", "rating": 4.4, "user_ratings_total": 12,
				 "types": ["restaurant"], "geometry": {"location": {"lat": 23.18, "lng": 77.59}}}
			]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	results, err := client.Search(context.Background(), "biryani",
		models.ReferenceLocation{Lat: 23.1765, Lng: 77.5885}, 10)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Biryani House" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestSearchZeroResultsIsNotAnError(t *testing.T) {
	config.AppConfig.GoogleAPIKey = "test-key"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	results, err := client.Search(context.Background(), "nothing",
		models.ReferenceLocation{Lat: 0, Lng: 0}, 5)
	if err != nil {
		t.Fatalf("ZERO_RESULTS surfaced as error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %v; want empty", results)
	}
}

func TestSearchAPIErrorStatus(t *testing.T) {
	config.AppConfig.GoogleAPIKey = "test-key"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "results": [], "error_message": "quota"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	if _, err := client.Search(context.Background(), "anything",
		models.ReferenceLocation{Lat: 0, Lng: 0}, 5); err == nil {
		t.Fatalf("expected error for OVER_QUERY_LIMIT status")
	}
}

func TestSearchRequiresAPIKey(t *testing.T) {
	config.AppConfig.GoogleAPIKey = ""

	client := NewGooglePlacesClient(zap.NewNop())
	if _, err := client.Search(context.Background(), "anything",
		models.ReferenceLocation{Lat: 0, Lng: 0}, 5); err == nil {
		t.Fatalf("expected error when API key missing")
	}
}
