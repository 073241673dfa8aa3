package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Supported user roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID                  uuid.UUID      `db:"id"`                    // Primary key
	Email               string         `db:"email"`                 // Unique, lower-cased email
	PasswordHash        string         `db:"password_hash"`         // Bcrypt hash, never serialized
	Name                string         `db:"name"`                  // Display name
	Role                string         `db:"role"`                  // user or admin
	FavoriteQuestionIDs pq.StringArray `db:"favorite_question_ids"` // Favorite set
	CreatedAt           time.Time      `db:"created_at"`            // Creation timestamp
	UpdatedAt           time.Time      `db:"updated_at"`            // Last update timestamp
}

// Summary returns the display-safe projection of the user.
func (u *UserDB) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Profile returns the projection shown to the account owner.
func (u *UserDB) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Favorites returns the favorite set as uuids, skipping malformed entries.
func (u *UserDB) Favorites() []uuid.UUID {
	return ParseUUIDs(u.FavoriteQuestionIDs)
}

// UserSummary is the only user shape embedded in questions and answers
// swagger:model UserSummary
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// UserProfile is returned to the authenticated owner
// swagger:model UserProfile
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParseUUIDs converts a text array into uuids, dropping entries that do not parse.
func ParseUUIDs(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// UUIDStrings is the inverse of ParseUUIDs.
func UUIDStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
