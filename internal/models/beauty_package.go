// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BeautyPackage represents a purchasable beauty-service offering.
type BeautyPackage struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title       string             `json:"title" bson:"title" example:"Facial Treatment"`
	Description string             `json:"description" bson:"description" example:"A 60-minute deep-cleansing facial"`
	Category    string             `json:"category" bson:"category" example:"skincare"`
	ImageKeys   []string           `json:"imageKeys" bson:"imageKeys" example:"packages/507f/cover.jpg"`
	ImageURLs   []string           `json:"imageUrls,omitempty" bson:"-" example:"https://bucket.s3.amazonaws.com/packages/507f/cover.jpg?X-Amz-Signature=..."` // Pre-signed URLs, not stored in DB
	Price       float64            `json:"price" bson:"price" example:"50"`
	Bookings    int                `json:"bookings" bson:"-" example:"3"` // Derived booking count, computed on read
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateBeautyPackageRequest is the payload for creating a beauty package.
type CreateBeautyPackageRequest struct {
	Title       string   `json:"title" binding:"required,min=2,max=200" example:"Facial Treatment"`
	Description string   `json:"description" binding:"required,max=2000" example:"A 60-minute deep-cleansing facial"`
	Category    string   `json:"category" binding:"required,category" example:"skincare"`
	ImageKeys   []string `json:"imageKeys" binding:"max=10,dive,max=512" example:"packages/507f/cover.jpg"`
	Price       float64  `json:"price" binding:"required,gt=0" example:"50"`
}

// UpdateBeautyPackageRequest is the payload for updating a beauty package.
// Omitted fields are left unchanged.
type UpdateBeautyPackageRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=2,max=200" example:"Facial Treatment Deluxe"`
	Description *string   `json:"description" binding:"omitempty,max=2000" example:"Now with hot stone massage"`
	Category    *string   `json:"category" binding:"omitempty,category" example:"skincare"`
	ImageKeys   *[]string `json:"imageKeys" binding:"omitempty,max=10,dive,max=512"`
	Price       *float64  `json:"price" binding:"omitempty,gt=0" example:"65"`
}

// BeautyPackageListResponse is the response for listing beauty packages.
type BeautyPackageListResponse struct {
	Items      []BeautyPackage `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

// ImageUploadRequest is the payload for requesting a package image upload.
type ImageUploadRequest struct {
	ContentType string `json:"contentType" binding:"required,oneof=image/jpeg image/png image/webp" example:"image/jpeg"`
}

// ImageUploadResponse is the response for requesting a package image upload.
type ImageUploadResponse struct {
	Key       string `json:"key" example:"packages/507f1f77bcf86cd799439011/a1b2c3.jpg"`
	UploadURL string `json:"uploadUrl" example:"https://bucket.s3.amazonaws.com/packages/...?X-Amz-Signature=..."`
}

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	PageSize   int `json:"pageSize" example:"10"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"5"`
}
