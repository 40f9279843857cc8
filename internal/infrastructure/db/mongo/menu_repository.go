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

const collectionMenus = "menus"

type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection(collectionMenus)}
}

type menuDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Active      bool               `bson:"active"`
	Version     int                `bson:"version"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
	CreatedByID string             `bson:"created_by_id,omitempty"`
	UpdatedByID string             `bson:"updated_by_id,omitempty"`
	Name        string             `bson:"name"`
	Icon        string             `bson:"icon,omitempty"`
	Order       int                `bson:"order"`
	RoleIDs     []string           `bson:"roles_id,omitempty"`
}

func (d *menuDoc) toDomain() *domain.Menu {
	return &domain.Menu{
		ID:          d.ID.Hex(),
		Active:      d.Active,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		CreatedByID: d.CreatedByID,
		UpdatedByID: d.UpdatedByID,
		Name:        d.Name,
		Icon:        d.Icon,
		Order:       d.Order,
		RoleIDs:     d.RoleIDs,
	}
}

func menuToDoc(m *domain.Menu) menuDoc {
	return menuDoc{
		Active:      m.Active,
		Version:     m.Version,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CreatedByID: m.CreatedByID,
		UpdatedByID: m.UpdatedByID,
		Name:        m.Name,
		Icon:        m.Icon,
		Order:       m.Order,
		RoleIDs:     m.RoleIDs,
	}
}

func (r *MenuRepository) FindByID(ctx context.Context, id string) (*domain.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMenuNotFound
	}

	var doc menuDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("find menu: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MenuRepository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Menu, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := listQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count menus: %w", err)
	}

	cursor, err := r.col.Find(ctx, query, listOptions(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("list menus: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Menu
	for cursor.Next(ctx) {
		var doc menuDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode menu: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list menus: %w", err)
	}
	return out, total, nil
}

func (r *MenuRepository) Insert(ctx context.Context, menu *domain.Menu) (*domain.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := menuToDoc(menu)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert menu: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MenuRepository) Update(ctx context.Context, menu *domain.Menu) (*domain.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(menu.ID)
	if err != nil {
		return nil, domain.ErrMenuNotFound
	}

	doc := menuToDoc(menu)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update menu: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMenuNotFound
	}

	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMenuNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

// EnsureIndexes creates the membership and ordering indexes backing the
// role-grants queries.
func (r *MenuRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "roles_id", Value: 1}, {Key: "active", Value: 1}, {Key: "order", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
