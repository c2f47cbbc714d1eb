package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamType string

const (
	TeamTypeClub     TeamType = "club"
	TeamTypeNational TeamType = "national"
)

func (t TeamType) Valid() bool {
	return t == TeamTypeClub || t == TeamTypeNational
}

type Team struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name      string              `json:"name" bson:"name"`
	ShortName string              `json:"short_name" bson:"short_name"`
	Type      TeamType            `json:"type" bson:"type"`
	Image     primitive.ObjectID  `json:"image" bson:"image"`
	League    *primitive.ObjectID `json:"league,omitempty" bson:"league,omitempty"`
	Founded   *int                `json:"founded,omitempty" bson:"founded,omitempty"`
	Stadium   string              `json:"stadium,omitempty" bson:"stadium,omitempty"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" bson:"updated_at"`
}

type TeamDetail struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	ShortName string             `json:"short_name"`
	Type      TeamType           `json:"type"`
	Image     Media              `json:"image"`
	League    *League            `json:"league,omitempty"`
	Founded   *int               `json:"founded,omitempty"`
	Stadium   string             `json:"stadium,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type TeamInput struct {
	Name      string     `json:"name" binding:"required"`
	ShortName string     `json:"short_name" binding:"required"`
	Type      string     `json:"type"`
	Image     string     `json:"image" binding:"required"`
	League    string     `json:"league"`
	Founded   *FlexInt64 `json:"founded"`
	Stadium   string     `json:"stadium"`
}

// Validate normaliza el tipo (club por defecto) y exige liga para los clubes.
func (in *TeamInput) Validate() error {
	if in.Type == "" {
		in.Type = string(TeamTypeClub)
	}
	if !TeamType(in.Type).Valid() {
		return fmt.Errorf("invalid team type %q", in.Type)
	}
	if TeamType(in.Type) == TeamTypeClub && in.League == "" {
		return errors.New("league is required for club teams")
	}
	return nil
}

// TeamUpdate representa los campos actualizables de un equipo
type TeamUpdate struct {
	Name      *string    `json:"name,omitempty"`
	ShortName *string    `json:"short_name,omitempty"`
	Type      *string    `json:"type,omitempty"`
	Image     *string    `json:"image,omitempty"`
	League    *string    `json:"league,omitempty"`
	Founded   *FlexInt64 `json:"founded,omitempty"`
	Stadium   *string    `json:"stadium,omitempty"`
}
