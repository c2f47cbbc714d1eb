package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tifosi-api/internal/models"
)

type LeagueRepository struct {
	collection *mongo.Collection
}

func NewLeagueRepository(collection *mongo.Collection) *LeagueRepository {
	return &LeagueRepository{collection: collection}
}

func (r *LeagueRepository) Create(ctx context.Context, league *models.League) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	league.ID = primitive.NewObjectID()
	now := time.Now()
	league.CreatedAt = now
	league.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, league)
	return err
}

func (r *LeagueRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.League, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var league models.League
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&league)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &league, nil
}

// FindAll lista ligas por nombre, opcionalmente filtradas por país.
func (r *LeagueRepository) FindAll(ctx context.Context, filter bson.M, page, limit int) ([]models.League, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	leagues := make([]models.League, 0)
	if err := cursor.All(ctx, &leagues); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return leagues, total, nil
}

func (r *LeagueRepository) FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.League, error) {
	result := make(map[primitive.ObjectID]models.League)
	if len(ids) == 0 {
		return result, nil
	}

	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.League
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		result[doc.ID] = doc
	}
	return result, nil
}
