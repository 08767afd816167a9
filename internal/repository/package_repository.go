// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	apperrors "beautybook/internal/errors"
	"beautybook/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks beautybook/internal/repository PackageRepository,BookingRepository,UserRepository

// PackageRepository defines the interface for beauty package data operations.
type PackageRepository interface {
	Create(ctx context.Context, pkg *models.BeautyPackage) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BeautyPackage, error)
	FindAll(ctx context.Context, page, pageSize int, search string) ([]models.BeautyPackage, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateBeautyPackageRequest) (*models.BeautyPackage, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.BeautyPackage, error)
	AddImageKey(ctx context.Context, id primitive.ObjectID, key string) error
}

// packageRepository implements PackageRepository using MongoDB.
type packageRepository struct {
	collection *mongo.Collection
}

// NewPackageRepository creates a new PackageRepository.
func NewPackageRepository(db *mongo.Database) PackageRepository {
	return &packageRepository{
		collection: db.Collection("beauty_packages"),
	}
}

// Create inserts a new beauty package into the database.
func (r *packageRepository) Create(ctx context.Context, pkg *models.BeautyPackage) error {
	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if pkg.ImageKeys == nil {
		pkg.ImageKeys = []string{}
	}

	result, err := r.collection.InsertOne(ctx, pkg)
	if err != nil {
		return err
	}

	pkg.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID retrieves a beauty package by ID.
func (r *packageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BeautyPackage, error) {
	var pkg models.BeautyPackage

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPackageNotFound
		}
		return nil, err
	}

	return &pkg, nil
}

// FindAll returns a page of beauty packages, optionally filtered by a
// case-insensitive title substring match. The search term is escaped so it is
// matched literally, never as a user-supplied pattern.
func (r *packageRepository) FindAll(ctx context.Context, page, pageSize int, search string) ([]models.BeautyPackage, int, error) {
	filter := bson.M{}
	if search != "" {
		filter["title"] = bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var packages []models.BeautyPackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, 0, err
	}

	// Return empty slice instead of nil
	if packages == nil {
		packages = []models.BeautyPackage{}
	}

	return packages, int(total), nil
}

// Update applies the provided fields to a beauty package and returns the
// updated document. Omitted fields are left untouched.
func (r *packageRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateBeautyPackageRequest) (*models.BeautyPackage, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Title != nil {
		updateDoc["title"] = *update.Title
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.Category != nil {
		updateDoc["category"] = *update.Category
	}
	if update.ImageKeys != nil {
		updateDoc["imageKeys"] = *update.ImageKeys
	}
	if update.Price != nil {
		updateDoc["price"] = *update.Price
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var pkg models.BeautyPackage
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		opts,
	).Decode(&pkg)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPackageNotFound
		}
		return nil, err
	}

	return &pkg, nil
}

// Delete removes a beauty package and returns the deleted document.
func (r *packageRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.BeautyPackage, error) {
	var pkg models.BeautyPackage

	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPackageNotFound
		}
		return nil, err
	}

	return &pkg, nil
}

// AddImageKey appends an image key to a beauty package without duplicating it.
func (r *packageRepository) AddImageKey(ctx context.Context, id primitive.ObjectID, key string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$addToSet": bson.M{"imageKeys": key},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrPackageNotFound
	}

	return nil
}
