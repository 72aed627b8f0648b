package business

import (
	"context"
	"fmt"
	"testing"

	"betulbuzz/models"

	"go.uber.org/zap"
)

type memRepo struct {
	businesses map[string]*models.Business
	reviews    []models.Review
}

func newMemRepo() *memRepo {
	return &memRepo{businesses: make(map[string]*models.Business)}
}

func (m *memRepo) Create(b *models.Business) error {
	m.businesses[b.ID] = b
	return nil
}
func (m *memRepo) Update(b *models.Business) error {
	if _, ok := m.businesses[b.ID]; !ok {
		return fmt.Errorf("business with id %s not found", b.ID)
	}
	m.businesses[b.ID] = b
	return nil
}
func (m *memRepo) Delete(id string) error {
	if _, ok := m.businesses[id]; !ok {
		return fmt.Errorf("business with id %s not found", id)
	}
	delete(m.businesses, id)
	return nil
}
func (m *memRepo) GetByID(id string) (*models.Business, error) {
	b, ok := m.businesses[id]
	if !ok {
		return nil, fmt.Errorf("business with id %s not found", id)
	}
	return b, nil
}
func (m *memRepo) GetAll() ([]models.Business, error)            { return nil, nil }
func (m *memRepo) GetActive() ([]models.Business, error)         { return nil, nil }
func (m *memRepo) GetByOwner(string) ([]models.Business, error)  { return nil, nil }
func (m *memRepo) GetByStatus(string) ([]models.Business, error) { return nil, nil }
func (m *memRepo) UpdateStatus(string, string) error             { return nil }
func (m *memRepo) SetFlag(string, string, bool) error            { return nil }
func (m *memRepo) AddImage(string, string) error                 { return nil }
func (m *memRepo) RemoveImage(string, string) error              { return nil }
func (m *memRepo) AddReview(r *models.Review) error {
	m.reviews = append(m.reviews, *r)
	return nil
}
func (m *memRepo) GetReviews(string) ([]models.Review, error) { return m.reviews, nil }
func (m *memRepo) UpdateRating(string, float64, int) error    { return nil }
func (m *memRepo) EnsureIndexes() error                       { return nil }

type recordingEnqueuer struct {
	enqueued []string
}

func (r *recordingEnqueuer) EnqueueRatingRecompute(ctx context.Context, businessID string) error {
	r.enqueued = append(r.enqueued, businessID)
	return nil
}

func newTestService(repo *memRepo) (*DefaultBusinessService, *recordingEnqueuer) {
	enq := &recordingEnqueuer{}
	return &DefaultBusinessService{
		Repo:     repo,
		Enqueuer: enq,
		Logger:   zap.NewNop(),
	}, enq
}

func validBusiness() *models.Business {
	return &models.Business{
		Name:        "Sharma Dhaba",
		Category:    "Restaurant & Food",
		LocationGeo: models.NewGeoPoint(23.18, 77.59),
	}
}

func TestRegisterStartsPending(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo)

	created, err := svc.Register(context.Background(), "owner-1", validBusiness())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if created.Status != models.StatusPending {
		t.Errorf("status = %q; want pending", created.Status)
	}
	if created.ID == "" {
		t.Errorf("no ID assigned")
	}
	if created.Verified || created.Featured || created.Premium {
		t.Errorf("flags set at registration: %+v", created)
	}
	if created.Rating != 0 || created.ReviewCount != 0 {
		t.Errorf("rating seeded at registration")
	}
}

func TestRegisterValidation(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	noName := validBusiness()
	noName.Name = ""
	if _, err := svc.Register(ctx, "owner-1", noName); err == nil {
		t.Errorf("expected error for missing name")
	}

	badCategory := validBusiness()
	badCategory.Category = "Frobnication"
	if _, err := svc.Register(ctx, "owner-1", badCategory); err == nil {
		t.Errorf("expected error for unknown category")
	}

	noLocation := validBusiness()
	noLocation.LocationGeo = models.GeoPoint{}
	if _, err := svc.Register(ctx, "owner-1", noLocation); err == nil {
		t.Errorf("expected error for missing location")
	}
}

func TestUpdateEnforcesOwnershipAndModerationFields(t *testing.T) {
	repo := newMemRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, "owner-1", validBusiness())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	created.Verified = true
	created.Status = models.StatusActive
	repo.businesses[created.ID] = created

	edit := *created
	edit.Description = "Best dhaba on the highway"
	edit.Verified = false // owners cannot drop moderation flags
	edit.Status = models.StatusSuspended

	updated, err := svc.Update(ctx, "owner-1", &edit)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !updated.Verified {
		t.Errorf("owner edit cleared verified flag")
	}
	if updated.Status != models.StatusActive {
		t.Errorf("owner edit changed status to %q", updated.Status)
	}
	if updated.Description != "Best dhaba on the highway" {
		t.Errorf("owner edit lost description")
	}

	if _, err := svc.Update(ctx, "owner-2", &edit); err == nil {
		t.Errorf("expected ownership error for foreign owner")
	}
}

func TestAddReviewEnqueuesRecompute(t *testing.T) {
	repo := newMemRepo()
	svc, enq := newTestService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, "owner-1", validBusiness())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	review := &models.Review{BusinessID: created.ID, Rating: 4.5, Comment: "solid"}
	if err := svc.AddReview(ctx, "user-9", review); err != nil {
		t.Fatalf("AddReview returned error: %v", err)
	}
	if len(repo.reviews) != 1 {
		t.Fatalf("review not stored")
	}
	if len(enq.enqueued) != 1 || enq.enqueued[0] != created.ID {
		t.Errorf("recompute not enqueued: %v", enq.enqueued)
	}

	outOfRange := &models.Review{BusinessID: created.ID, Rating: 6}
	if err := svc.AddReview(ctx, "user-9", outOfRange); err == nil {
		t.Errorf("expected error for out-of-range rating")
	}

	unknown := &models.Review{BusinessID: "nope", Rating: 3}
	if err := svc.AddReview(ctx, "user-9", unknown); err == nil {
		t.Errorf("expected error for unknown business")
	}
}
