package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

const collectionModules = "modules"

type ModuleRepository struct {
	col *mongo.Collection
}

func NewModuleRepository(db *mongo.Database) *ModuleRepository {
	return &ModuleRepository{col: db.Collection(collectionModules)}
}

type moduleDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Active      bool               `bson:"active"`
	Version     int                `bson:"version"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
	CreatedByID string             `bson:"created_by_id,omitempty"`
	UpdatedByID string             `bson:"updated_by_id,omitempty"`
	Name        string             `bson:"name"`
	Path        string             `bson:"path,omitempty"`
}

func (d *moduleDoc) toDomain() *domain.Module {
	return &domain.Module{
		ID:          d.ID.Hex(),
		Active:      d.Active,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		CreatedByID: d.CreatedByID,
		UpdatedByID: d.UpdatedByID,
		Name:        d.Name,
		Path:        d.Path,
	}
}

func moduleToDoc(m *domain.Module) moduleDoc {
	return moduleDoc{
		Active:      m.Active,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CreatedByID: m.CreatedByID,
		UpdatedByID: m.UpdatedByID,
		Name:        m.Name,
		Path:        m.Path,
	}
}

func (r *ModuleRepository) FindByID(ctx context.Context, id string) (*domain.Module, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrModuleNotFound
	}

	var doc moduleDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrModuleNotFound
		}
		return nil, fmt.Errorf("find module: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ModuleRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Module, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := listQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count modules: %w", err)
	}

	cursor, err := r.col.Find(ctx, query, listOptions(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("list modules: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Module
	for cursor.Next(ctx) {
		var doc moduleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode module: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list modules: %w", err)
	}
	return out, total, nil
}

func (r *ModuleRepository) Insert(ctx context.Context, module *domain.Module) (*domain.Module, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := moduleToDoc(module)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert module: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ModuleRepository) Update(ctx context.Context, module *domain.Module) (*domain.Module, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(module.ID)
	if err != nil {
		return nil, domain.ErrModuleNotFound
	}

	doc := moduleToDoc(module)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update module: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrModuleNotFound
	}

	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *ModuleRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrModuleNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete module: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrModuleNotFound
	}
	return nil
}
