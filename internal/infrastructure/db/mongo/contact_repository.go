package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/floctet/studio-api/internal/core/domain"
)

const messagesCollection = "contact_messages"

// ContactRepository is the durable backing for contact messages.
type ContactRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{db: db, coll: db.Collection(messagesCollection)}
}

type messageDoc struct {
	ID        int       `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Subject   string    `bson:"subject"`
	Message   string    `bson:"message"`
	Read      bool      `bson:"read"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d messageDoc) toDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Subject:   d.Subject,
		Message:   d.Message,
		Read:      d.Read,
		CreatedAt: d.CreatedAt,
	}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	id, err := nextSequence(ctx, r.db, messagesCollection)
	if err != nil {
		return nil, err
	}

	stored := *msg
	stored.ID = id

	doc := messageDoc{
		ID:        stored.ID,
		Name:      stored.Name,
		Email:     stored.Email,
		Subject:   stored.Subject,
		Message:   stored.Message,
		Read:      stored.Read,
		CreatedAt: stored.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return &stored, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id int) (*domain.ContactMessage, error) {
	var doc messageDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find contact message: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ContactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.ContactMessage
	for cur.Next(ctx) {
		var doc messageDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode contact message: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *ContactRepository) MarkRead(ctx context.Context, id int) (*domain.ContactMessage, error) {
	var doc messageDoc
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"read": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("mark contact message read: %w", err)
	}
	return doc.toDomain(), nil
}
