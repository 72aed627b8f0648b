package businessRepo

import (
	"fmt"
	"time"

	"betulbuzz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var business models.Business
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&business); err != nil {
		return nil, fmt.Errorf("failed to fetch business with id %s: %w", id, err)
	}
	return &business, nil
}

func (r *MongoBusinessRepo) GetAll() ([]models.Business, error) {
	return r.find(bson.M{})
}

// GetActive returns the listings the directory search runs over.
func (r *MongoBusinessRepo) GetActive() ([]models.Business, error) {
	return r.find(bson.M{"status": models.StatusActive})
}

func (r *MongoBusinessRepo) GetByOwner(ownerID string) ([]models.Business, error) {
	return r.find(bson.M{"ownerId": ownerID})
}

func (r *MongoBusinessRepo) GetByStatus(status string) ([]models.Business, error) {
	return r.find(bson.M{"status": status})
}

func (r *MongoBusinessRepo) find(filter bson.M) ([]models.Business, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("failed to decode businesses: %w", err)
	}
	return businesses, nil
}

// AddReview stores a review document.
func (r *MongoBusinessRepo) AddReview(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.reviews.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetReviews returns all reviews for a business, newest first.
func (r *MongoBusinessRepo) GetReviews(businessID string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.reviews.Find(ctx, bson.M{"businessId": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// UpdateRating writes the recomputed aggregate rating onto the listing.
func (r *MongoBusinessRepo) UpdateRating(businessID string, rating float64, reviewCount int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": businessID}
	update := bson.M{"$set": bson.M{
		"rating":      rating,
		"reviewCount": reviewCount,
		"updatedAt":   time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update rating for business %s: %w", businessID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business with id %s not found", businessID)
	}
	return nil
}
