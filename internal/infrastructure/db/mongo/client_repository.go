package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

const collectionClients = "clients"

// ClientRepository stores clients under their derived ID. The "activo" flag
// keeps the document shape used by existing records.
type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

type clientDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone"`
	DateAdded string    `bson:"dateAdded"`
	Active    *bool     `bson:"activo,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty"`
}

func toClientDocument(c *domain.Client) clientDocument {
	active := c.State.IsActive()
	return clientDocument{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		DateAdded: c.DateAdded,
		Active:    &active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (d clientDocument) toDomain() *domain.Client {
	return &domain.Client{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		DateAdded: d.DateAdded,
		State:     domain.StateFromActive(d.Active),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *ClientRepository) Get(ctx context.Context, id string) (*domain.Client, error) {
	var doc clientDocument
	if err := findByID(ctx, r.col, id, &doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ClientRepository) ListActive(ctx context.Context) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"activo": bson.M{"$ne": false}}, options.Find().SetSort(byID))
	if err != nil {
		return nil, err
	}
	var docs []clientDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]*domain.Client, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ClientRepository) Save(ctx context.Context, c *domain.Client) error {
	return replaceByID(ctx, r.col, c.ID, toClientDocument(c))
}

func (r *ClientRepository) SetState(ctx context.Context, id string, state domain.State) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"activo": state.IsActive(), "updatedAt": time.Now()}}
	res, err := r.col.UpdateOne(ctx, idFilter(id), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

// EnsureIndexes creates the indexes used by the active-client listing.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "activo", Value: 1}}})
	return err
}
