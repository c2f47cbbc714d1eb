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

type CountryRepository struct {
	collection *mongo.Collection
}

func NewCountryRepository(collection *mongo.Collection) *CountryRepository {
	return &CountryRepository{collection: collection}
}

func (r *CountryRepository) Create(ctx context.Context, country *models.Country) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	country.ID = primitive.NewObjectID()
	now := time.Now()
	country.CreatedAt = now
	country.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, country)
	return err
}

func (r *CountryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Country, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var country models.Country
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&country)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &country, nil
}

func (r *CountryRepository) FindAll(ctx context.Context, page, limit int) ([]models.Country, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	countries := make([]models.Country, 0)
	if err := cursor.All(ctx, &countries); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return countries, total, nil
}

func (r *CountryRepository) FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Country, error) {
	result := make(map[primitive.ObjectID]models.Country)
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

	var docs []models.Country
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		result[doc.ID] = doc
	}
	return result, nil
}
