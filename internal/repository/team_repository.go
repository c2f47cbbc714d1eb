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

type TeamRepository struct {
	collection *mongo.Collection
}

func NewTeamRepository(collection *mongo.Collection) *TeamRepository {
	return &TeamRepository{collection: collection}
}

func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	team.ID = primitive.NewObjectID()
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, team)
	return err
}

func (r *TeamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &team, nil
}

// FindAll lista equipos por nombre, opcionalmente filtrados por liga.
func (r *TeamRepository) FindAll(ctx context.Context, filter bson.M, page, limit int) ([]models.Team, int64, error) {
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

	teams := make([]models.Team, 0)
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

// Update aplica un $set parcial y devuelve el documento actualizado.
func (r *TeamRepository) Update(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	update["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var team models.Team
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": update}, opts).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &team, nil
}

// Delete borra el equipo. No se chequean referencias entrantes: un producto
// puede quedar apuntando a un equipo inexistente (gap aceptado).
func (r *TeamRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TeamRepository) FindMapByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Team, error) {
	result := make(map[primitive.ObjectID]models.Team)
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

	var docs []models.Team
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		result[doc.ID] = doc
	}
	return result, nil
}
