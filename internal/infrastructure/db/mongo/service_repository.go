package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/floctet/studio-api/internal/core/domain"
)

const servicesCollection = "services"

// ServiceRepository is the durable backing for the service catalog.
type ServiceRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{db: db, coll: db.Collection(servicesCollection)}
}

type serviceDoc struct {
	ID          int    `bson:"_id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Price       string `bson:"price"`
	Icon        string `bson:"icon"`
	IconClass   string `bson:"icon_class"`
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	id, err := nextSequence(ctx, r.db, servicesCollection)
	if err != nil {
		return nil, err
	}

	stored := *svc
	stored.ID = id

	doc := serviceDoc{
		ID:          stored.ID,
		Title:       stored.Title,
		Description: stored.Description,
		Price:       stored.Price,
		Icon:        stored.Icon,
		IconClass:   stored.IconClass,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return &stored, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Service
	for cur.Next(ctx) {
		var doc serviceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode service: %w", err)
		}
		out = append(out, &domain.Service{
			ID:          doc.ID,
			Title:       doc.Title,
			Description: doc.Description,
			Price:       doc.Price,
			Icon:        doc.Icon,
			IconClass:   doc.IconClass,
		})
	}
	return out, cur.Err()
}

// Count reports how many catalog entries exist, used to decide whether the
// seed needs to run.
func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
