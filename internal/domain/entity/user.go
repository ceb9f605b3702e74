package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a local record synced from the external identity provider.
// ExternalID is the provider-side id and the sole join key between
// users and the content they own.
type User struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"externalId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	UserName   string    `json:"userName"`
	Email      string    `json:"email"`
	AvatarURL  string    `json:"avatarUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FullName joins the first and last name for display and email greetings.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
