package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/backoffice/admin-api/internal/core/ports"
)

// listQuery translates the shared admin listing filter into a Mongo query.
func listQuery(filter ports.ListFilter) bson.M {
	query := bson.M{}
	if !filter.All {
		query["active"] = true
	}
	return query
}

// listOptions applies ordering and paging. Newest-first uses created_at; the
// default leans on _id, which is insertion-ordered for ObjectIDs.
func listOptions(filter ports.ListFilter) *options.FindOptions {
	opts := options.Find()
	if filter.OrderCreated {
		opts.SetSort(bson.D{{Key: "created_at", Value: -1}})
	} else {
		opts.SetSort(bson.D{{Key: "_id", Value: 1}})
	}
	if filter.Offset > 0 {
		opts.SetSkip(filter.Offset)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	return opts
}
