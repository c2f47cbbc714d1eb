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

type ColorRepository struct {
	collection *mongo.Collection
}

func NewColorRepository(collection *mongo.Collection) *ColorRepository {
	return &ColorRepository{collection: collection}
}

func (r *ColorRepository) Create(ctx context.Context, color *models.Color) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	color.ID = primitive.NewObjectID()
	now := time.Now()
	color.CreatedAt = now
	color.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, color)
	return err
}

func (r *ColorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Color, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var color models.Color
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&color)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &color, nil
}

// FindAll lista colores ordenados por nombre.
func (r *ColorRepository) FindAll(ctx context.Context, page, limit int) ([]models.Color, int64, error) {
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

	colors := make([]models.Color, 0)
	if err := cursor.All(ctx, &colors); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return colors, total, nil
}

// Update aplica un $set parcial y devuelve el documento actualizado.
func (r *ColorRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Color, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	update["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var color models.Color
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&color)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &color, nil
}

func (r *ColorRepository) FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Color, error) {
	result := make(map[primitive.ObjectID]models.Color)
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

	var docs []models.Color
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		result[doc.ID] = doc
	}
	return result, nil
}
