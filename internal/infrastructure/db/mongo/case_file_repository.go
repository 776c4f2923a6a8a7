package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

const collectionCaseFiles = "case_files"

type CaseFileRepository struct {
	col *mongo.Collection
}

func NewCaseFileRepository(db *mongo.Database) *CaseFileRepository {
	return &CaseFileRepository{col: db.Collection(collectionCaseFiles)}
}

// caseFileDocument carries a folded copy of the title so the (client, title)
// pair can be matched and indexed case-insensitively.
type caseFileDocument struct {
	ID            string    `bson:"_id"`
	ClientID      string    `bson:"clientId"`
	Title         string    `bson:"title"`
	TitleCI       string    `bson:"title_ci"`
	Subject       string    `bson:"subject"`
	Date          string    `bson:"date"`
	Place         string    `bson:"place"`
	Court         string    `bson:"court"`
	Description   string    `bson:"description"`
	DriveFolderID string    `bson:"googleDriveFolderId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt,omitempty"`
	UpdatedAt     time.Time `bson:"updatedAt,omitempty"`
}

func toCaseFileDocument(cf *domain.CaseFile) caseFileDocument {
	return caseFileDocument{
		ID:            cf.ID,
		ClientID:      cf.ClientID,
		Title:         cf.Title,
		TitleCI:       domain.FoldKey(cf.Title),
		Subject:       cf.Subject,
		Date:          cf.Date,
		Place:         cf.Place,
		Court:         cf.Court,
		Description:   cf.Description,
		DriveFolderID: cf.DriveFolderID,
		CreatedAt:     cf.CreatedAt,
		UpdatedAt:     cf.UpdatedAt,
	}
}

func (d caseFileDocument) toDomain() *domain.CaseFile {
	return &domain.CaseFile{
		ID:            d.ID,
		ClientID:      d.ClientID,
		Title:         d.Title,
		Subject:       d.Subject,
		Date:          d.Date,
		Place:         d.Place,
		Court:         d.Court,
		Description:   d.Description,
		DriveFolderID: d.DriveFolderID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *CaseFileRepository) Get(ctx context.Context, id string) (*domain.CaseFile, error) {
	var doc caseFileDocument
	if err := findByID(ctx, r.col, id, &doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *CaseFileRepository) List(ctx context.Context) ([]*domain.CaseFile, error) {
	return r.find(ctx, bson.M{})
}

func (r *CaseFileRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.CaseFile, error) {
	return r.find(ctx, bson.M{"clientId": clientID})
}

func (r *CaseFileRepository) ExistsByTitleAndClient(ctx context.Context, title, clientID, exclude string) (bool, error) {
	filter := bson.M{"clientId": clientID, "title_ci": domain.FoldKey(title)}
	return exists(ctx, r.col, excludeID(filter, exclude))
}

func (r *CaseFileRepository) Save(ctx context.Context, cf *domain.CaseFile) error {
	return replaceByID(ctx, r.col, cf.ID, toCaseFileDocument(cf))
}

func (r *CaseFileRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

// EnsureIndexes creates the client lookup index and the unique (client, title) index.
func (r *CaseFileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "clientId", Value: 1}}},
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "title_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("client_title_unique"),
		},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *CaseFileRepository) find(ctx context.Context, filter bson.M) ([]*domain.CaseFile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(byID))
	if err != nil {
		return nil, err
	}
	var docs []caseFileDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]*domain.CaseFile, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
