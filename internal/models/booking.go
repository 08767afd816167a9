package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking links one user to one beauty package. A booking is never updated in
// place: it either exists (active) or it doesn't.
type Booking struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	PackageID primitive.ObjectID `json:"packageId" bson:"packageId" example:"507f1f77bcf86cd799439012"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
}

// BookingDetails is a booking with its package and user embedded, as returned
// by the booking list endpoint.
type BookingDetails struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BeautyPackage BeautyPackage      `json:"beautyPackage" bson:"beautyPackage"`
	User          User               `json:"user" bson:"user"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// BookingListResponse is the response for listing bookings.
type BookingListResponse struct {
	Items      []BookingDetails `json:"items"`
	Pagination Pagination       `json:"pagination"`
}
