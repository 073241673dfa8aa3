package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GeoJSONPoint is the only location type a question carries.
const GeoJSONPoint = "Point"

// Location is a GeoJSON point; coordinates are [longitude, latitude]
// swagger:model Location
type Location struct {
	// example: Point
	Type string `json:"type"`
	// example: [10.0, 20.0]
	Coordinates [2]float64 `json:"coordinates"`
}

// NewLocation builds a GeoJSON point.
func NewLocation(longitude, latitude float64) Location {
	return Location{Type: GeoJSONPoint, Coordinates: [2]float64{longitude, latitude}}
}

// QuestionDB represents a question row joined with its author
type QuestionDB struct {
	ID          uuid.UUID      `db:"id"`           // Primary key
	Title       string         `db:"title"`        // Question title
	Content     string         `db:"content"`      // Free-text body
	Longitude   float64        `db:"longitude"`    // WGS84 longitude
	Latitude    float64        `db:"latitude"`     // WGS84 latitude
	AuthorID    uuid.UUID      `db:"author_id"`    // Owning user
	AnswerIDs   pq.StringArray `db:"answer_ids"`   // Ordered answer references
	LikeCount   int64          `db:"like_count"`   // Non-negative like counter
	CreatedAt   time.Time      `db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time      `db:"updated_at"`   // Last update timestamp
	AuthorName  string         `db:"author_name"`  // Joined from users
	AuthorEmail string         `db:"author_email"` // Joined from users
}

// Author returns the display-safe author projection.
func (q *QuestionDB) Author() UserSummary {
	return UserSummary{ID: q.AuthorID, Name: q.AuthorName, Email: q.AuthorEmail}
}

// Question is the API shape of a question with its relations expanded
// swagger:model Question
type Question struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Location  Location    `json:"location"`
	Author    UserSummary `json:"author"`
	AnswerIDs []uuid.UUID `json:"answer_ids"`
	Answers   []Answer    `json:"answers"`
	LikeCount int64       `json:"like_count"`
	// Distance from the search center in meters, set by nearby search only
	Distance  *float64  `json:"distance,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewQuestion expands a row with the given answers.
func NewQuestion(q *QuestionDB, answers []Answer) Question {
	if answers == nil {
		answers = []Answer{}
	}
	return Question{
		ID:        q.ID,
		Title:     q.Title,
		Content:   q.Content,
		Location:  NewLocation(q.Longitude, q.Latitude),
		Author:    q.Author(),
		AnswerIDs: ParseUUIDs(q.AnswerIDs),
		Answers:   answers,
		LikeCount: q.LikeCount,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// QuestionLocation is the projection loaded into the spatial index
type QuestionLocation struct {
	ID        uuid.UUID `db:"id"`
	Longitude float64   `db:"longitude"`
	Latitude  float64   `db:"latitude"`
}

// GeoHit is one spatial index match
type GeoHit struct {
	ID       uuid.UUID `db:"id"`
	Distance float64   `db:"distance"` // meters
}

// CreateQuestionRequest represents the JSON body for question creation
// swagger:model CreateQuestionRequest
type CreateQuestionRequest struct {
	// required: true
	// example: Where is the best coffee?
	Title string `json:"title" validate:"required,max=255"`

	// required: true
	// example: Looking for espresso near the station
	Content string `json:"content" validate:"required"`

	// required: true
	// example: 10.0
	Longitude *float64 `json:"longitude" validate:"required"`

	// required: true
	// example: 20.0
	Latitude *float64 `json:"latitude" validate:"required"`
}

// Nearby search defaults and bounds
const (
	DefaultNearbyRadius = 3000.0
	DefaultNearbyLimit  = 50
	MaxNearbyLimit      = 200
)

// NearbyQuery describes a radius search; nil Radius and Limit take the defaults
type NearbyQuery struct {
	Longitude float64
	Latitude  float64
	Radius    *float64 // meters
	Limit     *int
}
