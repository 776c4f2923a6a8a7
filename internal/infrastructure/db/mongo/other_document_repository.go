package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

const collectionOtherDocuments = "other_documents"

type OtherDocumentRepository struct {
	col *mongo.Collection
}

func NewOtherDocumentRepository(db *mongo.Database) *OtherDocumentRepository {
	return &OtherDocumentRepository{col: db.Collection(collectionOtherDocuments)}
}

type otherDocument struct {
	ID            string    `bson:"_id"`
	Title         string    `bson:"title"`
	TitleCI       string    `bson:"title_ci"`
	Type          string    `bson:"type"`
	TypeCI        string    `bson:"type_ci"`
	Description   string    `bson:"description"`
	Author        string    `bson:"author"`
	Tags          []string  `bson:"tags"`
	Source        string    `bson:"source"`
	Jurisdiction  string    `bson:"jurisdiction"`
	Court         string    `bson:"court"`
	CaseNumber    string    `bson:"caseNumber"`
	Year          string    `bson:"year"`
	Notes         string    `bson:"notes"`
	DateAdded     string    `bson:"dateAdded"`
	DriveFolderID string    `bson:"googleDriveFolderId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt,omitempty"`
	UpdatedAt     time.Time `bson:"updatedAt,omitempty"`
}

func toOtherDocument(d *domain.OtherDocument) otherDocument {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return otherDocument{
		ID:            d.ID,
		Title:         d.Title,
		TitleCI:       domain.FoldKey(d.Title),
		Type:          d.Type,
		TypeCI:        domain.FoldKey(d.Type),
		Description:   d.Description,
		Author:        d.Author,
		Tags:          tags,
		Source:        d.Source,
		Jurisdiction:  d.Jurisdiction,
		Court:         d.Court,
		CaseNumber:    d.CaseNumber,
		Year:          d.Year,
		Notes:         d.Notes,
		DateAdded:     d.DateAdded,
		DriveFolderID: d.DriveFolderID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (d otherDocument) toDomain() *domain.OtherDocument {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.OtherDocument{
		ID:            d.ID,
		Title:         d.Title,
		Type:          d.Type,
		Description:   d.Description,
		Author:        d.Author,
		Tags:          tags,
		Source:        d.Source,
		Jurisdiction:  d.Jurisdiction,
		Court:         d.Court,
		CaseNumber:    d.CaseNumber,
		Year:          d.Year,
		Notes:         d.Notes,
		DateAdded:     d.DateAdded,
		DriveFolderID: d.DriveFolderID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *OtherDocumentRepository) Get(ctx context.Context, id string) (*domain.OtherDocument, error) {
	var doc otherDocument
	if err := findByID(ctx, r.col, id, &doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *OtherDocumentRepository) List(ctx context.Context) ([]*domain.OtherDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(byID))
	if err != nil {
		return nil, err
	}
	var docs []otherDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]*domain.OtherDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *OtherDocumentRepository) ExistsByTitleAndType(ctx context.Context, title, docType, exclude string) (bool, error) {
	filter := bson.M{"title_ci": domain.FoldKey(title), "type_ci": domain.FoldKey(docType)}
	return exists(ctx, r.col, excludeID(filter, exclude))
}

func (r *OtherDocumentRepository) Save(ctx context.Context, d *domain.OtherDocument) error {
	return replaceByID(ctx, r.col, d.ID, toOtherDocument(d))
}

func (r *OtherDocumentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.col, id)
}

// EnsureIndexes creates the unique (title, type) index.
func (r *OtherDocumentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title_ci", Value: 1}, {Key: "type_ci", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("title_type_unique"),
	})
	return err
}
