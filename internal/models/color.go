package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Color struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	HexCode   string             `json:"hex_code,omitempty" bson:"hex_code,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type ColorInput struct {
	Name    string `json:"name" binding:"required"`
	HexCode string `json:"hex_code"`
}

// ColorUpdate representa los campos actualizables de un color
type ColorUpdate struct {
	Name    *string `json:"name,omitempty"`
	HexCode *string `json:"hex_code,omitempty"`
}
