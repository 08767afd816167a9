package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a customer or admin. Accounts are provisioned outside this
// service; requests carry the user's identity in a verified bearer token.
type User struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name        string             `json:"name" bson:"name" example:"Alice Johnson"`
	Email       string             `json:"email" bson:"email" example:"alice@example.com"`
	PhotoURL    string             `json:"photoUrl" bson:"photoUrl" example:"https://example.com/alice.png"`
	Address     string             `json:"address" bson:"address" example:"12 Rose Street"`
	PhoneNumber string             `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty" example:"+1-555-0100"`
	Role        string             `json:"role" bson:"role" example:"user"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// UserProfileResponse is a user together with their derived booking list.
// Bookings are computed from the bookings collection, never stored on the user.
type UserProfileResponse struct {
	User     User      `json:"user"`
	Bookings []Booking `json:"bookings"`
}
