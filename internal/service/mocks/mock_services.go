// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"beautybook/internal/models"
)

// MockPackageService is a mock implementation of PackageServicer.
type MockPackageService struct {
	ListPackagesFunc   func(ctx context.Context, page, pageSize int, search string) (*models.BeautyPackageListResponse, error)
	GetPackageFunc     func(ctx context.Context, id string) (*models.BeautyPackage, error)
	CreatePackageFunc  func(ctx context.Context, req *models.CreateBeautyPackageRequest) (*models.BeautyPackage, error)
	UpdatePackageFunc  func(ctx context.Context, id string, req *models.UpdateBeautyPackageRequest) (*models.BeautyPackage, error)
	DeletePackageFunc  func(ctx context.Context, id string) (*models.BeautyPackage, error)
	NewImageUploadFunc func(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error)
}

func (m *MockPackageService) ListPackages(ctx context.Context, page, pageSize int, search string) (*models.BeautyPackageListResponse, error) {
	if m.ListPackagesFunc != nil {
		return m.ListPackagesFunc(ctx, page, pageSize, search)
	}
	return nil, nil
}

func (m *MockPackageService) GetPackage(ctx context.Context, id string) (*models.BeautyPackage, error) {
	if m.GetPackageFunc != nil {
		return m.GetPackageFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPackageService) CreatePackage(ctx context.Context, req *models.CreateBeautyPackageRequest) (*models.BeautyPackage, error) {
	if m.CreatePackageFunc != nil {
		return m.CreatePackageFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockPackageService) UpdatePackage(ctx context.Context, id string, req *models.UpdateBeautyPackageRequest) (*models.BeautyPackage, error) {
	if m.UpdatePackageFunc != nil {
		return m.UpdatePackageFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockPackageService) DeletePackage(ctx context.Context, id string) (*models.BeautyPackage, error) {
	if m.DeletePackageFunc != nil {
		return m.DeletePackageFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPackageService) NewImageUpload(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error) {
	if m.NewImageUploadFunc != nil {
		return m.NewImageUploadFunc(ctx, id, req)
	}
	return nil, nil
}

// MockBookingService is a mock implementation of BookingServicer.
type MockBookingService struct {
	CreateBookingFunc func(ctx context.Context, userID, packageID string) (*models.Booking, error)
	GetBookingFunc    func(ctx context.Context, id string) (*models.Booking, error)
	ListBookingsFunc  func(ctx context.Context, page, pageSize int) (*models.BookingListResponse, error)
	DeleteBookingFunc func(ctx context.Context, userID, bookingID string) (*models.Booking, error)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, userID, packageID string) (*models.Booking, error) {
	if m.CreateBookingFunc != nil {
		return m.CreateBookingFunc(ctx, userID, packageID)
	}
	return nil, nil
}

func (m *MockBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	if m.GetBookingFunc != nil {
		return m.GetBookingFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBookingService) ListBookings(ctx context.Context, page, pageSize int) (*models.BookingListResponse, error) {
	if m.ListBookingsFunc != nil {
		return m.ListBookingsFunc(ctx, page, pageSize)
	}
	return nil, nil
}

func (m *MockBookingService) DeleteBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	if m.DeleteBookingFunc != nil {
		return m.DeleteBookingFunc(ctx, userID, bookingID)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetProfileFunc func(ctx context.Context, userID string) (*models.UserProfileResponse, error)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*models.UserProfileResponse, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, nil
}
