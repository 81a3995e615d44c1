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

const requestsCollection = "service_requests"

// RequestRepository is the durable backing for service requests.
type RequestRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{db: db, coll: db.Collection(requestsCollection)}
}

type requestDoc struct {
	ID          int       `bson:"_id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	Phone       string    `bson:"phone,omitempty"`
	ServiceType string    `bson:"service_type"`
	Description string    `bson:"description"`
	MinBudget   string    `bson:"min_budget,omitempty"`
	MaxBudget   string    `bson:"max_budget,omitempty"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func toRequestDoc(r *domain.ServiceRequest) requestDoc {
	return requestDoc{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		ServiceType: r.ServiceType,
		Description: r.Description,
		MinBudget:   r.MinBudget,
		MaxBudget:   r.MaxBudget,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (d requestDoc) toDomain() *domain.ServiceRequest {
	return &domain.ServiceRequest{
		ID:          d.ID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		ServiceType: d.ServiceType,
		Description: d.Description,
		MinBudget:   d.MinBudget,
		MaxBudget:   d.MaxBudget,
		Status:      domain.RequestStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	id, err := nextSequence(ctx, r.db, requestsCollection)
	if err != nil {
		return nil, err
	}

	stored := *req
	stored.ID = id

	if _, err := r.coll.InsertOne(ctx, toRequestDoc(&stored)); err != nil {
		return nil, fmt.Errorf("insert service request: %w", err)
	}
	return &stored, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id int) (*domain.ServiceRequest, error) {
	var doc requestDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find service request: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns every request ordered by id, which equals insertion order
// because ids are assigned sequentially.
func (r *RequestRepository) List(ctx context.Context) ([]*domain.ServiceRequest, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.ServiceRequest
	for cur.Next(ctx) {
		var doc requestDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode service request: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// UpdateStatus relies on findAndModify for a single atomic read-modify-write
// on the document.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id int, status domain.RequestStatus) (*domain.ServiceRequest, error) {
	var doc requestDoc
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("update service request status: %w", err)
	}
	return doc.toDomain(), nil
}
