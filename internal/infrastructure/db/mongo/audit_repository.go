package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

const collectionAuditLogins = "audit_logins"

type AuditLoginRepository struct {
	col *mongo.Collection
}

func NewAuditLoginRepository(db *mongo.Database) *AuditLoginRepository {
	return &AuditLoginRepository{col: db.Collection(collectionAuditLogins)}
}

type auditLoginDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id,omitempty"`
	Username  string             `bson:"username"`
	IP        string             `bson:"ip,omitempty"`
	Geo       string             `bson:"geo,omitempty"`
	UserAgent string             `bson:"user_agent,omitempty"`
	Language  string             `bson:"language,omitempty"`
	Auth      bool               `bson:"auth"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *auditLoginDoc) toDomain() *domain.AuditLogin {
	return &domain.AuditLogin{
		ID:       d.ID.Hex(),
		UserID:   d.UserID,
		Username: d.Username,
		Metadata: domain.RequestMetadata{
			IP:        d.IP,
			Geo:       d.Geo,
			UserAgent: d.UserAgent,
			Language:  d.Language,
		},
		Auth:      d.Auth,
		CreatedAt: d.CreatedAt,
	}
}

func auditLoginToDoc(rec *domain.AuditLogin) auditLoginDoc {
	return auditLoginDoc{
		UserID:    rec.UserID,
		Username:  rec.Username,
		IP:        rec.Metadata.IP,
		Geo:       rec.Metadata.Geo,
		UserAgent: rec.Metadata.UserAgent,
		Language:  rec.Metadata.Language,
		Auth:      rec.Auth,
		CreatedAt: rec.CreatedAt,
	}
}

func (r *AuditLoginRepository) Insert(ctx context.Context, rec *domain.AuditLogin) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := auditLoginToDoc(rec)
	doc.ID = primitive.NewObjectID()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit login: %w", err)
	}
	return nil
}

func (r *AuditLoginRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.AuditLogin, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Audit records carry no active flag, so every entry matches.
	query := bson.M{}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count audit logins: %w", err)
	}

	opts := listOptions(filter)
	opts.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logins: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.AuditLogin
	for cursor.Next(ctx) {
		var doc auditLoginDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode audit login: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list audit logins: %w", err)
	}
	return out, total, nil
}

func (r *AuditLoginRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("audit login indexes: %w", err)
	}
	return nil
}
