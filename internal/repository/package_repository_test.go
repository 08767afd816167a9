package repository

import (
	"context"
	"testing"
	"time"

	apperrors "beautybook/internal/errors"
	"beautybook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewPackageRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewPackageRepository(tdb.Database)

	assert.NotNil(t, repo)
}

func TestPackageRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewPackageRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates package", func(t *testing.T) {
		tdb.ClearCollection(t, "beauty_packages")

		pkg := &models.BeautyPackage{
			Title:       "Deluxe Facial Treatment",
			Description: "90-minute deep cleansing facial",
			Category:    "skincare",
			Price:       89.99,
		}

		err := repo.Create(ctx, pkg)

		require.NoError(t, err)
		assert.False(t, pkg.ID.IsZero())
		assert.NotZero(t, pkg.CreatedAt)
		assert.NotZero(t, pkg.UpdatedAt)
		assert.NotNil(t, pkg.ImageKeys)
	})

	t.Run("round-trips through FindByID", func(t *testing.T) {
		tdb.ClearCollection(t, "beauty_packages")

		pkg := &models.BeautyPackage{
			Title:       "Hot Stone Massage",
			Description: "60-minute full body massage",
			Category:    "spa",
			ImageKeys:   []string{"seed/hot-stone-1.jpg"},
			Price:       110,
		}
		err := repo.Create(ctx, pkg)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, pkg.ID)

		require.NoError(t, err)
		assert.Equal(t, pkg.Title, found.Title)
		assert.Equal(t, pkg.Category, found.Category)
		assert.Equal(t, pkg.Price, found.Price)
		assert.Equal(t, pkg.ImageKeys, found.ImageKeys)
	})
}

func TestPackageRepository_FindByID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewPackageRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns not found for non-existent package", func(t *testing.T) {
		found, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.ErrorIs(t, err, apperrors.ErrPackageNotFound)
		assert.Nil(t, found)
	})
}

func TestPackageRepository_FindAll(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewPackageRepository(tdb.Database)
	ctx := context.Background()

	seed := func(titles ...string) {
		tdb.ClearCollection(t, "beauty_packages")
		for _, title := range titles {
			err := repo.Create(ctx, &models.BeautyPackage{
				Title:       title,
				Description: "d",
				Category:    "spa",
				Price:       10,
			})
			require.NoError(t, err)
			// createdAt is stored at millisecond precision; keep inserts apart
			// so the sort order is deterministic
			time.Sleep(2 * time.Millisecond)
		}
	}

	t.Run("returns all packages with total", func(t *testing.T) {
		seed("Facial", "Massage", "Manicure")

		packages, total, err := repo.FindAll(ctx, 1, 10, "")

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, packages, 3)
	})

	t.Run("pages are disjoint and ordered oldest first", func(t *testing.T) {
		seed("First", "Second", "Third", "Fourth", "Fifth")

		page1, total, err := repo.FindAll(ctx, 1, 2, "")
		require.NoError(t, err)
		page2, _, err := repo.FindAll(ctx, 2, 2, "")
		require.NoError(t, err)

		assert.Equal(t, 5, total)
		require.Len(t, page1, 2)
		require.Len(t, page2, 2)
		assert.Equal(t, "First", page1[0].Title)
		assert.Equal(t, "Second", page1[1].Title)
		assert.Equal(t, "Third", page2[0].Title)
		assert.Equal(t, "Fourth", page2[1].Title)
	})

	t.Run("search matches title case-insensitively", func(t *testing.T) {
		seed("Deluxe Facial", "Keratin Treatment", "Mini facial")

		packages, total, err := repo.FindAll(ctx, 1, 10, "FACIAL")

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, packages, 2)
	})

	t.Run("search term is matched literally not as a pattern", func(t *testing.T) {
		seed("Facial", "F.cial")

		packages, total, err := repo.FindAll(ctx, 1, 10, "F.cial")

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, packages, 1)
		assert.Equal(t, "F.cial", packages[0].Title)
	})

	t.Run("empty page returns empty slice", func(t *testing.T) {
		tdb.ClearCollection(t, "beauty_packages")

		packages, total, err := repo.FindAll(ctx, 1, 10, "")

		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.NotNil(t, packages)
		assert.Empty(t, packages)
	})
}

func TestPackageRepository_Update(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewPackageRepository(tdb.Database)
	ctx := context.Background()

	t.Run("merges provided fields and keeps the rest", func(t *testing.T) {
		tdb.ClearCollection(t, "beauty_packages")

		pkg := &models.BeautyPackage{
			Title:       "Original Title",
			Description: "Original description",
			Category:    "spa",
			Price:       100,
		}
		err := repo.Create(ctx, pkg)
		require.NoError(t, err)

		time.Sleep(2 * time.Millisecond)

		newPrice := 120.0
		updated, err := repo.Update(ctx, pkg.ID, &models.UpdateBeautyPackageRequest{
			Price: &newPrice,
		})

		require.NoError(t, err)
		assert.Equal(t, newPrice, updated.Price)
		assert.Equal(t, "Original Title", updated.Title)
		assert.Equal(t, "Original description", updated.Description)
		assert.True(t, updated.UpdatedAt.After(pkg.UpdatedAt))
	})

	t.Run("replaces image keys when provided", func(t *testing.T) {
		tdb.ClearCollection(t, "beauty_packages")

		pkg := &models.BeautyPackage{
			Title:       "With Images",
			Description: "d",
			Category:    "spa",
			ImageKeys:   []string{"old/a.jpg", "old/b.jpg"},
			Price:       50,
		}
		err := repo.Create(ctx, pkg)
		require.NoError(t, err)

		newKeys := []string{"new/c.jpg"}
		updated, err := repo.Update(ctx, pkg.ID, &models.UpdateBeautyPackageRequest{
			ImageKeys: &newKeys,
		})

		require.NoError(t, err)
		assert.Equal(t, newKeys, updated.ImageKeys)
	})

	t.Run("returns not found for non-existent package", func(t *testing.T) {
		title := "x"
		updated, err := repo.Update(ctx, primitive.NewObjectID(), &models.UpdateBeautyPackageRequest{
			Title: &title,
		})

		assert.ErrorIs(t, err, apperrors.ErrPackageNotFound)
		assert.Nil(t, updated)
	})
}

func TestPackageRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewPackageRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes and returns the document", func(t *testing.T) {
		tdb.ClearCollection(t, "beauty_packages")

		pkg := &models.BeautyPackage{
			Title:       "To Delete",
			Description: "d",
			Category:    "spa",
			Price:       10,
		}
		err := repo.Create(ctx, pkg)
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, pkg.ID)

		require.NoError(t, err)
		assert.Equal(t, pkg.ID, deleted.ID)
		assert.Equal(t, "To Delete", deleted.Title)

		// The package is gone afterwards
		_, err = repo.FindByID(ctx, pkg.ID)
		assert.ErrorIs(t, err, apperrors.ErrPackageNotFound)
	})

	t.Run("returns not found for non-existent package", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, primitive.NewObjectID())

		assert.ErrorIs(t, err, apperrors.ErrPackageNotFound)
		assert.Nil(t, deleted)
	})
}

func TestPackageRepository_AddImageKey(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewPackageRepository(tdb.Database)
	ctx := context.Background()

	t.Run("appends key without duplicating", func(t *testing.T) {
		tdb.ClearCollection(t, "beauty_packages")

		pkg := &models.BeautyPackage{
			Title:       "With Images",
			Description: "d",
			Category:    "spa",
			ImageKeys:   []string{"existing.jpg"},
			Price:       10,
		}
		err := repo.Create(ctx, pkg)
		require.NoError(t, err)

		err = repo.AddImageKey(ctx, pkg.ID, "new.jpg")
		require.NoError(t, err)
		err = repo.AddImageKey(ctx, pkg.ID, "new.jpg")
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, pkg.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"existing.jpg", "new.jpg"}, found.ImageKeys)
	})

	t.Run("returns not found for non-existent package", func(t *testing.T) {
		err := repo.AddImageKey(ctx, primitive.NewObjectID(), "x.jpg")

		assert.ErrorIs(t, err, apperrors.ErrPackageNotFound)
	})
}
