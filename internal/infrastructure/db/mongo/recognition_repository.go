package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kudoshq/recognition-api/internal/core/domain"
)

const collectionRecognitions = "recognitions"

// recognitionDoc is the persisted shape. The Sender variant flattens to
// a nullable from_user_id: absent means anonymous, exactly mirroring
// the domain invariant.
type recognitionDoc struct {
	ID         string    `bson:"_id"`
	Message    string    `bson:"message"`
	Emoji      string    `bson:"emoji"`
	FromUserID *string   `bson:"from_user_id,omitempty"`
	ToUserID   string    `bson:"to_user_id"`
	Visibility string    `bson:"visibility"`
	CreatedAt  time.Time `bson:"created_at"`
	Keywords   []string  `bson:"keywords"`
}

func toRecognitionDoc(rec *domain.Recognition) recognitionDoc {
	d := recognitionDoc{
		ID:         rec.ID,
		Message:    rec.Message,
		Emoji:      rec.Emoji,
		ToUserID:   rec.ToUserID,
		Visibility: string(rec.Visibility),
		CreatedAt:  rec.CreatedAt,
		Keywords:   rec.Keywords,
	}
	if id, ok := rec.Sender.UserID(); ok {
		d.FromUserID = &id
	}
	return d
}

func (d recognitionDoc) toDomain() domain.Recognition {
	sender := domain.AnonymousSender()
	if d.FromUserID != nil {
		sender = domain.IdentifiedSender(*d.FromUserID)
	}
	return domain.Recognition{
		ID:         d.ID,
		Message:    d.Message,
		Emoji:      d.Emoji,
		Sender:     sender,
		ToUserID:   d.ToUserID,
		Visibility: domain.Visibility(d.Visibility),
		CreatedAt:  d.CreatedAt,
		Keywords:   d.Keywords,
	}
}

type RecognitionRepository struct {
	col *mongo.Collection
}

func NewRecognitionRepository(db *mongo.Database) *RecognitionRepository {
	return &RecognitionRepository{col: db.Collection(collectionRecognitions)}
}

func (r *RecognitionRepository) FindByID(ctx context.Context, id string) (*domain.Recognition, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d recognitionDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecognitionNotFound
		}
		return nil, err
	}
	rec := d.toDomain()
	return &rec, nil
}

func (r *RecognitionRepository) List(ctx context.Context) ([]domain.Recognition, error) {
	return r.find(ctx, bson.M{})
}

func (r *RecognitionRepository) ListByRecipient(ctx context.Context, userID string) ([]domain.Recognition, error) {
	return r.find(ctx, bson.M{"to_user_id": userID})
}

func (r *RecognitionRepository) ListByRecipients(ctx context.Context, userIDs []string) ([]domain.Recognition, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"to_user_id": bson.M{"$in": userIDs}})
}

func (r *RecognitionRepository) find(ctx context.Context, filter bson.M) ([]domain.Recognition, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var recs []domain.Recognition
	for cur.Next(ctx) {
		var d recognitionDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		recs = append(recs, d.toDomain())
	}
	return recs, cur.Err()
}

func (r *RecognitionRepository) Append(ctx context.Context, rec *domain.Recognition) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, toRecognitionDoc(rec))
	return err
}

func (r *RecognitionRepository) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecognitionNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the recognition queries depend on.
func (r *RecognitionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "to_user_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
