package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"beautybook/internal/config"
	"beautybook/internal/database"
	"beautybook/internal/storage"
	"beautybook/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedUser represents a user document for seeding.
type SeedUser struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	PhotoURL    string             `bson:"photoUrl"`
	Address     string             `bson:"address"`
	PhoneNumber string             `bson:"phoneNumber,omitempty"`
	Role        string             `bson:"role"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// SeedPackage represents a beauty package document for seeding.
type SeedPackage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	ImageKeys   []string           `bson:"imageKeys"`
	Price       float64            `bson:"price"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// SeedBooking represents a booking document for seeding.
type SeedBooking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PackageID primitive.ObjectID `bson:"packageId"`
	UserID    primitive.ObjectID `bson:"userId"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Connect to S3/MinIO
	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
	)

	ctx := context.Background()

	// Seed users
	userIDs := seedUsers(ctx, mongoDB.Database)

	// Seed beauty packages and placeholder images
	packageIDs := seedPackages(ctx, mongoDB.Database, s3Client)

	// Seed bookings
	seedBookings(ctx, mongoDB.Database, userIDs, packageIDs)

	// Print dev tokens for manual testing against the protected endpoints
	printDevTokens(cfg, userIDs)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	// Clear existing users
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	now := time.Now()

	users := []interface{}{
		SeedUser{
			Name:        "Alice Johnson",
			Email:       "alice@example.com",
			PhotoURL:    "https://i.pravatar.cc/150?u=alice",
			Address:     "12 Rose Street, Springfield",
			PhoneNumber: "+1-555-0101",
			Role:        "user",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		SeedUser{
			Name:      "Bob Smith",
			Email:     "bob@example.com",
			PhotoURL:  "https://i.pravatar.cc/150?u=bob",
			Address:   "48 Oak Avenue, Springfield",
			Role:      "user",
			CreatedAt: now,
			UpdatedAt: now,
		},
		SeedUser{
			Name:        "Carol Admin",
			Email:       "carol@example.com",
			PhotoURL:    "https://i.pravatar.cc/150?u=carol",
			Address:     "7 Admin Plaza, Springfield",
			PhoneNumber: "+1-555-0103",
			Role:        "admin",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	// Convert to ObjectIDs
	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

func seedPackages(ctx context.Context, db *mongo.Database, s3Client *storage.S3Client) []primitive.ObjectID {
	collection := db.Collection("beauty_packages")

	// Clear existing packages
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear beauty packages: %v", err)
	}

	now := time.Now()

	packages := []SeedPackage{
		{
			Title:       "Deluxe Facial Treatment",
			Description: "A 90-minute deep cleansing facial with exfoliation, steam, extraction, and a hydrating mask. Suitable for all skin types.",
			Category:    "skincare",
			ImageKeys:   []string{"seed/deluxe-facial-1.jpg", "seed/deluxe-facial-2.jpg"},
			Price:       89.99,
			CreatedAt:   now.Add(-72 * time.Hour),
			UpdatedAt:   now.Add(-72 * time.Hour),
		},
		{
			Title:       "Bridal Makeup Package",
			Description: "Full bridal makeup with trial session, airbrush foundation, lashes, and touch-up kit for the big day.",
			Category:    "makeup",
			ImageKeys:   []string{"seed/bridal-makeup-1.jpg"},
			Price:       249.00,
			CreatedAt:   now.Add(-48 * time.Hour),
			UpdatedAt:   now.Add(-48 * time.Hour),
		},
		{
			Title:       "Keratin Hair Smoothing",
			Description: "Professional keratin treatment that smooths frizz and adds shine for up to three months. Includes wash and blow-dry.",
			Category:    "hair-care",
			ImageKeys:   []string{"seed/keratin-1.jpg", "seed/keratin-2.jpg"},
			Price:       150.00,
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
		{
			Title:       "Classic Manicure and Pedicure",
			Description: "Nail shaping, cuticle care, relaxing hand and foot massage, and polish of your choice.",
			Category:    "nails",
			ImageKeys:   []string{"seed/mani-pedi-1.jpg"},
			Price:       45.50,
			CreatedAt:   now.Add(-12 * time.Hour),
			UpdatedAt:   now.Add(-12 * time.Hour),
		},
		{
			Title:       "Hot Stone Massage",
			Description: "A 60-minute full body massage using heated basalt stones to melt away tension and improve circulation.",
			Category:    "spa",
			ImageKeys:   []string{"seed/hot-stone-1.jpg"},
			Price:       110.00,
			CreatedAt:   now.Add(-6 * time.Hour),
			UpdatedAt:   now.Add(-6 * time.Hour),
		},
	}

	// Upload placeholder images to S3/MinIO
	for _, pkg := range packages {
		for _, key := range pkg.ImageKeys {
			uploadPlaceholderImage(ctx, s3Client, key)
		}
	}

	// Convert to []interface{} for InsertMany
	var packagesToInsert []interface{}
	for _, pkg := range packages {
		packagesToInsert = append(packagesToInsert, pkg)
	}

	result, err := collection.InsertMany(ctx, packagesToInsert)
	if err != nil {
		log.Fatalf("Failed to seed beauty packages: %v", err)
	}

	log.Printf("Seeded %d beauty packages", len(result.InsertedIDs))

	var packageIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		packageIDs = append(packageIDs, id.(primitive.ObjectID))
	}

	return packageIDs
}

func seedBookings(ctx context.Context, db *mongo.Database, userIDs, packageIDs []primitive.ObjectID) {
	collection := db.Collection("bookings")

	// Clear existing bookings
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear bookings: %v", err)
	}

	now := time.Now()

	bookings := []interface{}{
		SeedBooking{
			PackageID: packageIDs[0],
			UserID:    userIDs[0],
			CreatedAt: now.Add(-36 * time.Hour),
		},
		SeedBooking{
			PackageID: packageIDs[2],
			UserID:    userIDs[0],
			CreatedAt: now.Add(-10 * time.Hour),
		},
		SeedBooking{
			PackageID: packageIDs[0],
			UserID:    userIDs[1],
			CreatedAt: now.Add(-4 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, bookings)
	if err != nil {
		log.Fatalf("Failed to seed bookings: %v", err)
	}

	log.Printf("Seeded %d bookings", len(result.InsertedIDs))
}

// uploadPlaceholderImage uploads a tiny placeholder JPEG to S3.
func uploadPlaceholderImage(ctx context.Context, s3Client *storage.S3Client, key string) {
	// Minimal JPEG header followed by padding, enough to be served as an image
	placeholder := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x00}, 1020)...)

	err := s3Client.PutObject(ctx, key, bytes.NewReader(placeholder), "image/jpeg")
	if err != nil {
		log.Printf("Warning: Failed to upload %s: %v", key, err)
		return
	}

	log.Printf("Uploaded placeholder image: %s", key)
}

// printDevTokens mints a JWT per seeded user for local testing.
func printDevTokens(cfg *config.Config, userIDs []primitive.ObjectID) {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	fmt.Println("\nDev tokens:")
	for _, id := range userIDs {
		token, err := jwtManager.GenerateToken(id.Hex())
		if err != nil {
			log.Printf("Warning: Failed to generate token for %s: %v", id.Hex(), err)
			continue
		}
		fmt.Printf("  %s  Bearer %s\n", id.Hex(), token)
	}
}
