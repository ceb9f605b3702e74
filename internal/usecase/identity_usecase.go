package usecase

import "context"

// IdentityEventKind is the type of an identity-provider webhook event.
type IdentityEventKind string

const (
	IdentityUserCreated IdentityEventKind = "user.created"
	IdentityUserUpdated IdentityEventKind = "user.updated"
	IdentityUserDeleted IdentityEventKind = "user.deleted"
)

// IdentityProfile is the user profile carried by an identity event.
type IdentityProfile struct {
	ExternalID string
	FirstName  string
	LastName   string
	UserName   string
	Email      string
	AvatarURL  string
}

// IdentityEvent is one parsed identity-provider webhook event.
type IdentityEvent struct {
	Kind    IdentityEventKind
	Profile IdentityProfile
}

// IdentityUsecase defines the interface for syncing user records from the
// external identity provider. Sync failures are logged and swallowed so
// the provider's webhook is always acknowledged; HandleEvent therefore
// only returns an error for malformed input, never for storage failures.
type IdentityUsecase interface {
	// HandleEvent applies one identity event to the local user store
	HandleEvent(ctx context.Context, event *IdentityEvent) error
}
