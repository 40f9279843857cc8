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

const collectionMenuItems = "menu_items"

type MenuItemRepository struct {
	col *mongo.Collection
}

func NewMenuItemRepository(db *mongo.Database) *MenuItemRepository {
	return &MenuItemRepository{col: db.Collection(collectionMenuItems)}
}

type menuItemDoc struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	Active       bool                `bson:"active"`
	Version      int                 `bson:"version"`
	CreatedAt    time.Time           `bson:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at"`
	CreatedByID  string              `bson:"created_by_id,omitempty"`
	UpdatedByID  string              `bson:"updated_by_id,omitempty"`
	Name         string              `bson:"name"`
	Icon         string              `bson:"icon,omitempty"`
	Order        int                 `bson:"order"`
	MenuID       string              `bson:"menu_id"`
	ModuleID     string              `bson:"module_id,omitempty"`
	RoleIDs      []string            `bson:"roles_id,omitempty"`
	Capabilities domain.Capabilities `bson:"capabilities"`
}

func (d *menuItemDoc) toDomain() *domain.MenuItem {
	return &domain.MenuItem{
		ID:           d.ID.Hex(),
		Active:       d.Active,
		Version:      d.Version,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		CreatedByID:  d.CreatedByID,
		UpdatedByID:  d.UpdatedByID,
		Name:         d.Name,
		Icon:         d.Icon,
		Order:        d.Order,
		MenuID:       d.MenuID,
		ModuleID:     d.ModuleID,
		RoleIDs:      d.RoleIDs,
		Capabilities: d.Capabilities,
	}
}

func menuItemToDoc(it *domain.MenuItem) menuItemDoc {
	return menuItemDoc{
		Active:       it.Active,
		Version:      it.Version,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
		CreatedByID:  it.CreatedByID,
		UpdatedByID:  it.UpdatedByID,
		Name:         it.Name,
		Icon:         it.Icon,
		Order:        it.Order,
		MenuID:       it.MenuID,
		ModuleID:     it.ModuleID,
		RoleIDs:      it.RoleIDs,
		Capabilities: it.Capabilities,
	}
}

func (r *MenuItemRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMenuItemNotFound
	}

	var doc menuItemDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MenuItemRepository) List(ctx context.Context, menuID string, filter ports.ListFilter) ([]*domain.MenuItem, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := listQuery(filter)
	if menuID != "" {
		query["menu_id"] = menuID
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count menu items: %w", err)
	}

	cursor, err := r.col.Find(ctx, query, listOptions(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("list menu items: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.MenuItem
	for cursor.Next(ctx) {
		var doc menuItemDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode menu item: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list menu items: %w", err)
	}
	return out, total, nil
}

func (r *MenuItemRepository) Insert(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := menuItemToDoc(item)
	doc.ID = primitive.NewObjectID()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MenuItemRepository) Update(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return nil, domain.ErrMenuItemNotFound
	}

	doc := menuItemToDoc(item)
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMenuItemNotFound
	}

	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMenuItemNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

// EnsureIndexes creates the per-menu and membership indexes backing the
// role-grants queries.
func (r *MenuItemRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "menu_id", Value: 1}, {Key: "roles_id", Value: 1}, {Key: "active", Value: 1}, {Key: "order", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
