package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tifosi-api/internal/models"
)

// Interfaces sobre los repositorios; los handlers dependen de esto y no de
// los structs concretos, así los tests pueden inyectar fakes.

type colorStore interface {
	Create(ctx context.Context, color *models.Color) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Color, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Color, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Color, error)
	FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Color, error)
}

type mediaStore interface {
	Create(ctx context.Context, media *models.Media) error
	FindByPublicID(ctx context.Context, publicID string) (*models.Media, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Media, int64, error)
	FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Media, error)
	AllExist(ctx context.Context, ids []primitive.ObjectID) (bool, error)
}

type countryStore interface {
	Create(ctx context.Context, country *models.Country) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Country, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Country, int64, error)
	FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Country, error)
}

type leagueStore interface {
	Create(ctx context.Context, league *models.League) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.League, error)
	FindAll(ctx context.Context, filter bson.M, page, limit int) ([]models.League, int64, error)
	FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.League, error)
}

type teamStore interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindAll(ctx context.Context, filter bson.M, page, limit int) ([]models.Team, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Team, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Team, error)
}

type productStore interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	FindAll(ctx context.Context, filter bson.M, sort bson.D, page, limit int) ([]models.Product, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Product, error)
}
