package service

import (
	"context"
	"time"

	"beautybook/internal/cache"
	apperrors "beautybook/internal/errors"
	"beautybook/internal/models"
	"beautybook/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const userCacheTTL = 15 * time.Minute

// UserService handles business logic for user operations.
type UserService struct {
	repo        repository.UserRepository
	bookingRepo repository.BookingRepository
	cache       cache.Cache
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, bookingRepo repository.BookingRepository, cache cache.Cache) *UserService {
	return &UserService{
		repo:        repo,
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

// GetProfile returns a user together with their derived booking list. The
// user document is cached; the booking list is queried fresh so a just-made
// booking always shows up.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.UserProfileResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	cacheKey := cache.UserCacheKey(userID)
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err != nil || !found {
		dbUser, err := s.repo.FindByID(ctx, objectID)
		if err != nil {
			return nil, err
		}
		user = *dbUser

		// Store in cache (best effort)
		_ = s.cache.Set(ctx, cacheKey, dbUser, userCacheTTL)
	}

	bookings, err := s.bookingRepo.FindByUserID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	return &models.UserProfileResponse{
		User:     user,
		Bookings: bookings,
	}, nil
}
