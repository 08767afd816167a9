package repository

import (
	"context"
	"errors"
	"time"

	apperrors "beautybook/internal/errors"
	"beautybook/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepository defines the interface for booking data operations.
//
// Bookings live in a single authoritative collection; user and package booking
// lists are derived by query (FindByUserID, CountByPackageID) instead of being
// stored as back-reference arrays, so no multi-document write sequence exists.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	FindAllWithDetails(ctx context.Context, page, pageSize int) ([]models.BookingDetails, int, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error)
	CountByPackageID(ctx context.Context, packageID primitive.ObjectID) (int, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	DeleteByPackageID(ctx context.Context, packageID primitive.ObjectID) (int, error)
}

// bookingRepository implements BookingRepository using MongoDB.
type bookingRepository struct {
	collection *mongo.Collection
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{
		collection: db.Collection("bookings"),
	}
}

// Create inserts a new booking. The unique (userId, packageId) index is the
// authoritative duplicate-booking guard: a duplicate key error from the insert
// is reported as ErrAlreadyBooked, so concurrent requests cannot double-book.
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	booking.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrAlreadyBooked
		}
		return err
	}

	booking.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID retrieves a booking by ID.
func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// FindAllWithDetails returns a page of bookings with their beauty package and
// user embedded, newest first.
func (r *bookingRepository) FindAllWithDetails(ctx context.Context, page, pageSize int) ([]models.BookingDetails, int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: int64(skip)}},
		{{Key: "$limit", Value: int64(pageSize)}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "beauty_packages"},
			{Key: "localField", Value: "packageId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "beautyPackage"},
		}}},
		{{Key: "$unwind", Value: "$beautyPackage"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "userId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: "$user"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var bookings []models.BookingDetails
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, err
	}

	if bookings == nil {
		bookings = []models.BookingDetails{}
	}

	return bookings, int(total), nil
}

// FindByUserID returns a user's bookings, newest first. This is the derived
// replacement for the booking array the user document used to carry.
func (r *bookingRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}

	return bookings, nil
}

// CountByPackageID returns how many active bookings a package has.
func (r *bookingRepository) CountByPackageID(ctx context.Context, packageID primitive.ObjectID) (int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{"packageId": packageID})
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// Delete removes a booking and returns the deleted document.
func (r *bookingRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking

	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// DeleteByPackageID removes all bookings for a package. Used when the package
// itself is deleted so no booking can dangle.
func (r *bookingRepository) DeleteByPackageID(ctx context.Context, packageID primitive.ObjectID) (int, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"packageId": packageID})
	if err != nil {
		return 0, err
	}
	return int(result.DeletedCount), nil
}
