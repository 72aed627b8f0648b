package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"betulbuzz/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubDirectoryService struct {
	results []models.MatchResult
	err     error
}

func (s *stubDirectoryService) Search(ctx context.Context, req models.SearchRequest) ([]models.MatchResult, error) {
	return s.results, s.err
}

func (s *stubDirectoryService) Nearby(ctx context.Context, ref models.ReferenceLocation, radiusKm float64) ([]models.MatchResult, error) {
	return s.results, s.err
}

func (s *stubDirectoryService) GetByID(ctx context.Context, id string) (*models.Business, error) {
	for i := range s.results {
		if s.results[i].Business.ID == id {
			return &s.results[i].Business, nil
		}
	}
	return nil, fmt.Errorf("business with id %s not found", id)
}

func (s *stubDirectoryService) GetByCategory(ctx context.Context, category string) ([]models.Business, error) {
	var out []models.Business
	for _, r := range s.results {
		if r.Business.Category == category {
			out = append(out, r.Business)
		}
	}
	return out, nil
}

func newDirectoryRouter(svc *stubDirectoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDirectoryHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/directory/search", h.SearchHandler)
	r.GET("/api/directory/nearby", h.NearbyHandler)
	r.GET("/api/directory/id/:id", h.GetBusinessHandler)
	return r
}

func TestSearchHandlerReturnsResults(t *testing.T) {
	svc := &stubDirectoryService{
		results: []models.MatchResult{
			{Business: models.Business{ID: "b1", Name: "Royal Restaurant", Category: "Restaurant & Food"}},
		},
	}
	r := newDirectoryRouter(svc)

	body := `{"filters":{"query":"rest"},"sortBy":"rating"}`
	req := httptest.NewRequest(http.MethodPost, "/api/directory/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Results []models.MatchResult `json:"results"`
		Count   int                  `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Count != 1 || len(resp.Results) != 1 || resp.Results[0].Business.ID != "b1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestSearchHandlerRejectsMalformedBody(t *testing.T) {
	r := newDirectoryRouter(&stubDirectoryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/directory/search", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
}

func TestNearbyHandlerRequiresCoordinates(t *testing.T) {
	r := newDirectoryRouter(&stubDirectoryService{})

	req := httptest.NewRequest(http.MethodGet, "/api/directory/nearby?lat=23.17", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400 when lng is missing", w.Code)
	}
}

func TestGetBusinessHandlerNotFound(t *testing.T) {
	r := newDirectoryRouter(&stubDirectoryService{})

	req := httptest.NewRequest(http.MethodGet, "/api/directory/id/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", w.Code)
	}
}
