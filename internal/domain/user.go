package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role constrains a user to one of two access levels.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// UserStatus gates whether an account may use the API at all.
type UserStatus string

const (
	StatusActive   UserStatus = "ACTIVE"
	StatusInactive UserStatus = "INACTIVE"
)

func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// User is the persisted account record. Password and reset-token fields are
// never serialized to JSON.
type User struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NumericID           int64              `bson:"numericId" json:"numericId"`
	Username            string             `bson:"username" json:"username"`
	Email               string             `bson:"email" json:"email"`
	Password            string             `bson:"password" json:"-"`
	FirstName           string             `bson:"firstName" json:"firstName"`
	LastName            string             `bson:"lastName" json:"lastName"`
	Role                Role               `bson:"role" json:"role"`
	Status              UserStatus         `bson:"status" json:"status"`
	ResetToken          string             `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpiresAt *time.Time         `bson:"resetTokenExpiresAt,omitempty" json:"-"`
}

// UserListing is the projection returned by the user list endpoint:
// the human-readable numeric id plus public profile fields only.
type UserListing struct {
	ID        int64      `bson:"id" json:"id"`
	Username  string     `bson:"username" json:"username"`
	FirstName string     `bson:"firstname" json:"firstname"`
	LastName  string     `bson:"lastname" json:"lastname"`
	Email     string     `bson:"email" json:"email"`
	Role      Role       `bson:"role" json:"role"`
	Status    UserStatus `bson:"status" json:"status"`
}
