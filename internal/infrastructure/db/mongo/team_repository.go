package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

const collectionTeams = "teams"

type teamDoc struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

type TeamRepository struct {
	col *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{col: db.Collection(collectionTeams)}
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d teamDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return &domain.Team{ID: d.ID, Name: d.Name}, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var teams []domain.Team
	for cur.Next(ctx) {
		var d teamDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		teams = append(teams, domain.Team{ID: d.ID, Name: d.Name})
	}
	return teams, cur.Err()
}
