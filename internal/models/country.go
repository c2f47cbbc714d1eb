package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Country struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Image     primitive.ObjectID `json:"image" bson:"image"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// CountryDetail es la vista con la imagen expandida para las respuestas del API.
type CountryDetail struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Image     Media              `json:"image"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type CountryInput struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image" binding:"required"`
}
