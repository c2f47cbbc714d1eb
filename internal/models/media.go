package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media guarda la metadata de un asset subido al host externo,
// identificado por el public_id que asigna el proveedor.
type Media struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PublicID  string             `json:"public_id" bson:"public_id"`
	URL       string             `json:"url" bson:"url"`
	SecureURL string             `json:"secure_url" bson:"secure_url"`
	Format    string             `json:"format" bson:"format"`
	Bytes     int64              `json:"bytes" bson:"bytes"`
	Width     int                `json:"width" bson:"width"`
	Height    int                `json:"height" bson:"height"`
	Alt       string             `json:"alt,omitempty" bson:"alt,omitempty"`
	Caption   string             `json:"caption,omitempty" bson:"caption,omitempty"`
	Folder    string             `json:"folder" bson:"folder"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
