package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"beautybook/internal/cache"
	apperrors "beautybook/internal/errors"
	"beautybook/internal/models"
	"beautybook/internal/repository"
	"beautybook/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	packageCacheTTL = 15 * time.Minute
	imageURLExpiry  = 1 * time.Hour
	uploadURLExpiry = 15 * time.Minute
	defaultPageSize = 10
	maxPageSize     = 50
)

// imageExtensions maps accepted upload content types to object key extensions.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// PackageService handles business logic for beauty package operations.
type PackageService struct {
	repo        repository.PackageRepository
	bookingRepo repository.BookingRepository
	cache       cache.Cache
	storage     storage.Storage
}

// NewPackageService creates a new PackageService.
func NewPackageService(
	repo repository.PackageRepository,
	bookingRepo repository.BookingRepository,
	cache cache.Cache,
	storage storage.Storage,
) *PackageService {
	return &PackageService{
		repo:        repo,
		bookingRepo: bookingRepo,
		cache:       cache,
		storage:     storage,
	}
}

// ListPackages returns a page of beauty packages, optionally filtered by a
// case-insensitive title search, with pre-signed image URLs.
func (s *PackageService) ListPackages(ctx context.Context, page, pageSize int, search string) (*models.BeautyPackageListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	packages, total, err := s.repo.FindAll(ctx, page, pageSize, search)
	if err != nil {
		return nil, err
	}

	for i := range packages {
		s.presignImages(ctx, &packages[i])
	}

	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	return &models.BeautyPackageListResponse{
		Items: packages,
		Pagination: models.Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetPackage retrieves a beauty package by ID (with caching). The derived
// booking count and pre-signed image URLs are computed on every read.
func (s *PackageService) GetPackage(ctx context.Context, id string) (*models.BeautyPackage, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrPackageNotFound
	}

	cacheKey := cache.PackageCacheKey(id)
	var pkg models.BeautyPackage
	found, err := s.cache.Get(ctx, cacheKey, &pkg)
	if err != nil || !found {
		// Cache miss - get from database
		dbPkg, err := s.repo.FindByID(ctx, objectID)
		if err != nil {
			return nil, err
		}
		pkg = *dbPkg

		// Store in cache (best effort)
		_ = s.cache.Set(ctx, cacheKey, dbPkg, packageCacheTTL)
	}

	count, err := s.bookingRepo.CountByPackageID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	pkg.Bookings = count

	s.presignImages(ctx, &pkg)

	return &pkg, nil
}

// CreatePackage creates a new beauty package.
func (s *PackageService) CreatePackage(ctx context.Context, req *models.CreateBeautyPackageRequest) (*models.BeautyPackage, error) {
	pkg := &models.BeautyPackage{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageKeys:   req.ImageKeys,
		Price:       req.Price,
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	s.presignImages(ctx, pkg)

	return pkg, nil
}

// UpdatePackage applies a partial update to a beauty package. Omitted fields
// are left unchanged.
func (s *PackageService) UpdatePackage(ctx context.Context, id string, req *models.UpdateBeautyPackageRequest) (*models.BeautyPackage, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrPackageNotFound
	}

	pkg, err := s.repo.Update(ctx, objectID, req)
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.PackageCacheKey(id))

	s.presignImages(ctx, pkg)

	return pkg, nil
}

// DeletePackage removes a beauty package together with its bookings, so no
// booking can reference a package that no longer exists. Returns the deleted
// package.
func (s *PackageService) DeletePackage(ctx context.Context, id string) (*models.BeautyPackage, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrPackageNotFound
	}

	pkg, err := s.repo.Delete(ctx, objectID)
	if err != nil {
		return nil, err
	}

	removed, err := s.bookingRepo.DeleteByPackageID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if removed > 0 {
		log.Printf("Removed %d bookings for deleted package %s", removed, id)
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.PackageCacheKey(id))

	return pkg, nil
}

// NewImageUpload registers a new image key on a beauty package and returns a
// pre-signed PUT URL the client uploads the image to.
func (s *PackageService) NewImageUpload(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrPackageNotFound
	}

	key := fmt.Sprintf("packages/%s/%s%s", objectID.Hex(), primitive.NewObjectID().Hex(), imageExtensions[req.ContentType])

	uploadURL, err := s.storage.GetPresignedPutURL(ctx, key, req.ContentType, uploadURLExpiry)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddImageKey(ctx, objectID, key); err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.PackageCacheKey(id))

	return &models.ImageUploadResponse{
		Key:       key,
		UploadURL: uploadURL,
	}, nil
}

// presignImages fills ImageURLs with pre-signed GET URLs for each stored key.
// Failures are skipped; the key list itself is always returned.
func (s *PackageService) presignImages(ctx context.Context, pkg *models.BeautyPackage) {
	for _, key := range pkg.ImageKeys {
		url, err := s.storage.GetPresignedURL(ctx, key, imageURLExpiry)
		if err != nil {
			continue
		}
		pkg.ImageURLs = append(pkg.ImageURLs, url)
	}
}
