package models

// VetProfile holds the professional details attached to a user of type vet.
// The row is created empty at registration and filled in later; IsVerified
// stays false until an operator confirms the council registration.
type VetProfile struct {
	ID                  int64
	UserID              int64
	Qualifications      string
	VetCouncilRegNumber string
	IsVerified          bool
}

// Vet is the composite record returned by the verified-vets listing:
// the user row joined with its profile.
type Vet struct {
	User    User
	Profile VetProfile
}
