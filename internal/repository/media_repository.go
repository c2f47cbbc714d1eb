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

type MediaRepository struct {
	collection *mongo.Collection
}

func NewMediaRepository(collection *mongo.Collection) *MediaRepository {
	return &MediaRepository{collection: collection}
}

// Create inserta un registro de media nuevo.
func (r *MediaRepository) Create(ctx context.Context, media *models.Media) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	media.ID = primitive.NewObjectID()
	now := time.Now()
	media.CreatedAt = now
	media.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, media)
	return err
}

// UpsertByPublicID crea o actualiza el registro asociado al public_id
// del proveedor y devuelve el documento resultante.
func (r *MediaRepository) UpsertByPublicID(ctx context.Context, media *models.Media) (*models.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"url":        media.URL,
			"secure_url": media.SecureURL,
			"format":     media.Format,
			"bytes":      media.Bytes,
			"width":      media.Width,
			"height":     media.Height,
			"alt":        media.Alt,
			"caption":    media.Caption,
			"folder":     media.Folder,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"public_id":  media.PublicID,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved models.Media
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"public_id": media.PublicID}, update, opts).Decode(&saved)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *MediaRepository) FindByPublicID(ctx context.Context, publicID string) (*models.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var media models.Media
	err := r.collection.FindOne(ctx, bson.M{"public_id": publicID}).Decode(&media)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &media, nil
}

// FindAll lista media ordenada por fecha de subida, la más reciente primero.
func (r *MediaRepository) FindAll(ctx context.Context, page, limit int) ([]models.Media, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	media := make([]models.Media, 0)
	if err := cursor.All(ctx, &media); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return media, total, nil
}

// FindMapByIDs devuelve los documentos indexados por _id para el populate.
func (r *MediaRepository) FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Media, error) {
	result := make(map[primitive.ObjectID]models.Media)
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

	var docs []models.Media
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		result[doc.ID] = doc
	}
	return result, nil
}

// AllExist verifica que cada id referenciado exista (chequeo todo-o-nada
// previo a crear un producto).
func (r *MediaRepository) AllExist(ctx context.Context, ids []primitive.ObjectID) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	unique := make(map[primitive.ObjectID]struct{}, len(ids))
	distinct := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, seen := unique[id]; !seen {
			unique[id] = struct{}{}
			distinct = append(distinct, id)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": distinct}})
	if err != nil {
		return false, err
	}
	return count == int64(len(distinct)), nil
}

// DeleteByPublicID elimina el registro local de un asset.
func (r *MediaRepository) DeleteByPublicID(ctx context.Context, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"public_id": publicID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
