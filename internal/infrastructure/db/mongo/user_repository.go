package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type userDocument struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Role         string `bson:"role"`
	Avatar       string `bson:"avatar"`
	Phone        string `bson:"phone"`
	Email        string `bson:"email"`
	EmailCI      string `bson:"email_ci"`
	PasswordHash string `bson:"password"`
	Deleted      *bool  `bson:"deleted,omitempty"`
}

func toUserDocument(u *domain.User) userDocument {
	deleted := !u.State.IsActive()
	return userDocument{
		ID:           u.ID,
		Name:         u.Name,
		Role:         u.Role,
		Avatar:       u.Avatar,
		Phone:        u.Phone,
		Email:        u.Email,
		EmailCI:      domain.FoldKey(u.Email),
		PasswordHash: u.PasswordHash,
		Deleted:      &deleted,
	}
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID,
		Name:         d.Name,
		Role:         d.Role,
		Avatar:       d.Avatar,
		Phone:        d.Phone,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		State:        domain.StateFromDeleted(d.Deleted),
	}
}

var notDeleted = bson.M{"$ne": true}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	var doc userDocument
	if err := findByID(ctx, r.col, id, &doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) ListActive(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"deleted": notDeleted}, options.Find().SetSort(byID))
	if err != nil {
		return nil, err
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// FindByEmail sorts on the deleted flag so an enabled account wins over
// disabled ones sharing the address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "deleted", Value: 1}, {Key: "_id", Value: 1}})
	var doc userDocument
	err := r.col.FindOne(ctx, bson.M{"email_ci": domain.FoldKey(email)}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) ActiveEmailExists(ctx context.Context, email, exclude string) (bool, error) {
	filter := bson.M{"email_ci": domain.FoldKey(email), "deleted": notDeleted}
	return exists(ctx, r.col, excludeID(filter, exclude))
}

func (r *UserRepository) Save(ctx context.Context, u *domain.User) error {
	return replaceByID(ctx, r.col, u.ID, toUserDocument(u))
}

func (r *UserRepository) SetState(ctx context.Context, id string, state domain.State) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M{"deleted": !state.IsActive()}})
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the email lookup index and a partial unique index
// covering enabled users only.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email_ci", Value: 1}, {Key: "deleted", Value: 1}}},
		{
			Keys: bson.D{{Key: "email_ci", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("active_email_unique").
				SetPartialFilterExpression(bson.M{"deleted": false}),
		},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
