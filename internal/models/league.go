package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type League struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Image     primitive.ObjectID `json:"image" bson:"image"`
	Country   primitive.ObjectID `json:"country" bson:"country"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// LeagueDetail expande imagen y país (un solo nivel, el país va sin expandir su imagen).
type LeagueDetail struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Image     Media              `json:"image"`
	Country   Country            `json:"country"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type LeagueInput struct {
	Name    string `json:"name" binding:"required"`
	Image   string `json:"image" binding:"required"`
	Country string `json:"country" binding:"required"`
}
