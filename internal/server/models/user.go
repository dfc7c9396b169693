package models

import "time"

// UserType distinguishes the two roles a user can register as.
type UserType string

const (
	UserTypeFarmer UserType = "farmer"
	UserTypeVet    UserType = "vet"
)

// Valid reports whether t is one of the known roles.
func (t UserType) Valid() bool {
	return t == UserTypeFarmer || t == UserTypeVet
}

// User is a registered account. HashedPassword holds the bcrypt credential,
// never the plaintext.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	FullName       string
	PhoneNumber    string
	UserType       UserType
	IsActive       bool
	CreatedAt      time.Time
}
