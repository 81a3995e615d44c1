package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/floctet/studio-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository is the durable backing for user records. Lowercased shadow
// fields make username/email lookups case-insensitive without a collation.
type UserRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db, coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID           int       `bson:"_id"`
	Username     string    `bson:"username"`
	UsernameLC   string    `bson:"username_lc"`
	PasswordHash string    `bson:"password_hash"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	EmailLC      string    `bson:"email_lc"`
	Phone        string    `bson:"phone,omitempty"`
	Gender       string    `bson:"gender,omitempty"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Username:     u.Username,
		UsernameLC:   strings.ToLower(u.Username),
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Email:        u.Email,
		EmailLC:      strings.ToLower(u.Email),
		Phone:        u.Phone,
		Gender:       u.Gender,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		Gender:       d.Gender,
		Role:         d.Role,
		CreatedAt:    d.CreatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	id, err := nextSequence(ctx, r.db, usersCollection)
	if err != nil {
		return nil, err
	}

	stored := *user
	stored.ID = id

	if _, err := r.coll.InsertOne(ctx, toUserDoc(&stored)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &stored, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username_lc": strings.ToLower(username)})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email_lc": strings.ToLower(email)})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, toUserDoc(user))
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}
