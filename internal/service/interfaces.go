// Package service contains business logic for the application.
package service

import (
	"context"

	"beautybook/internal/models"
)

// PackageServicer defines the interface for beauty package operations.
type PackageServicer interface {
	ListPackages(ctx context.Context, page, pageSize int, search string) (*models.BeautyPackageListResponse, error)
	GetPackage(ctx context.Context, id string) (*models.BeautyPackage, error)
	CreatePackage(ctx context.Context, req *models.CreateBeautyPackageRequest) (*models.BeautyPackage, error)
	UpdatePackage(ctx context.Context, id string, req *models.UpdateBeautyPackageRequest) (*models.BeautyPackage, error)
	DeletePackage(ctx context.Context, id string) (*models.BeautyPackage, error)
	NewImageUpload(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error)
}

// BookingServicer defines the interface for booking operations.
type BookingServicer interface {
	CreateBooking(ctx context.Context, userID, packageID string) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, page, pageSize int) (*models.BookingListResponse, error)
	DeleteBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfileResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ PackageServicer = (*PackageService)(nil)
	_ BookingServicer = (*BookingService)(nil)
	_ UserServicer    = (*UserService)(nil)
)
