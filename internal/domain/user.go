package domain

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserRef is a user identifier supplied in a request body. Older clients
// send a number, newer ones a string; both decode to the same value.
type UserRef string

func (r *UserRef) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == "" {
		*r = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*r = UserRef(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*r = UserRef(n.String())
	return nil
}

func (r UserRef) String() string {
	return string(r)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	Upsert(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	// EnsureUserExists creates or refreshes the user record for an
	// authenticated identity.
	EnsureUserExists(ctx context.Context, user *User) error
	// GetCurrentUser returns the stored user, or the placeholder user when
	// userID is empty.
	GetCurrentUser(ctx context.Context, userID string) (*User, error)
}
