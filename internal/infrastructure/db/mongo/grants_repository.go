package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/backoffice/admin-api/internal/core/domain"
)

// GrantsRepository is the Mongo view of the role↔menu↔menu-item edge sets.
// Membership is stored denormalised: each menu and menu item carries the list
// of role ids allowed to see it, so both queries are a single array-membership
// scan with an ascending sort on the order key.
type GrantsRepository struct {
	menus *mongo.Collection
	items *mongo.Collection
}

func NewGrantsRepository(db *mongo.Database) *GrantsRepository {
	return &GrantsRepository{
		menus: db.Collection(collectionMenus),
		items: db.Collection(collectionMenuItems),
	}
}

func (r *GrantsRepository) MenusForRole(ctx context.Context, roleID string) ([]domain.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"roles_id": roleID, "active": true}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.menus.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("menus for role: %w", err)
	}
	defer cursor.Close(ctx)

	out := []domain.Menu{}
	for cursor.Next(ctx) {
		var doc menuDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode menu: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("menus for role: %w", err)
	}
	return out, nil
}

func (r *GrantsRepository) MenuItemsForRole(ctx context.Context, menuID, roleID string) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"menu_id": menuID, "roles_id": roleID, "active": true}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.items.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("menu items for role: %w", err)
	}
	defer cursor.Close(ctx)

	out := []domain.MenuItem{}
	for cursor.Next(ctx) {
		var doc menuItemDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("menu items for role: %w", err)
	}
	return out, nil
}
