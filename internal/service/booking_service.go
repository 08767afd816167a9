package service

import (
	"context"

	apperrors "beautybook/internal/errors"
	"beautybook/internal/models"
	"beautybook/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingService handles business logic for booking operations.
type BookingService struct {
	repo        repository.BookingRepository
	packageRepo repository.PackageRepository
	userRepo    repository.UserRepository
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo repository.BookingRepository,
	packageRepo repository.PackageRepository,
	userRepo repository.UserRepository,
) *BookingService {
	return &BookingService{
		repo:        repo,
		packageRepo: packageRepo,
		userRepo:    userRepo,
	}
}

// CreateBooking books a beauty package for a user. The unique (userId,
// packageId) index makes the insert itself the duplicate guard; there is no
// check-then-act window for concurrent requests to slip through.
func (s *BookingService) CreateBooking(ctx context.Context, userID, packageID string) (*models.Booking, error) {
	packageObjID, err := primitive.ObjectIDFromHex(packageID)
	if err != nil {
		return nil, apperrors.ErrPackageNotFound
	}

	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	if _, err := s.userRepo.FindByID(ctx, userObjID); err != nil {
		return nil, err
	}

	if _, err := s.packageRepo.FindByID(ctx, packageObjID); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		PackageID: packageObjID,
		UserID:    userObjID,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrBookingNotFound
	}

	return s.repo.FindByID(ctx, objectID)
}

// ListBookings returns a page of bookings with package and user details
// embedded.
func (s *BookingService) ListBookings(ctx context.Context, page, pageSize int) (*models.BookingListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	bookings, total, err := s.repo.FindAllWithDetails(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	return &models.BookingListResponse{
		Items: bookings,
		Pagination: models.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// DeleteBooking removes a booking owned by the given user and returns the
// deleted record. An absent booking and a booking owned by someone else get
// the same answer so the endpoint can't be used to probe other users'
// bookings.
func (s *BookingService) DeleteBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, apperrors.ErrBookingNotFound
	}

	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	booking, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		if err == apperrors.ErrBookingNotFound {
			return nil, apperrors.ErrBookingMissing
		}
		return nil, err
	}

	if booking.UserID != userObjID {
		return nil, apperrors.ErrBookingMissing
	}

	deleted, err := s.repo.Delete(ctx, objectID)
	if err != nil {
		if err == apperrors.ErrBookingNotFound {
			return nil, apperrors.ErrBookingMissing
		}
		return nil, err
	}

	return deleted, nil
}
