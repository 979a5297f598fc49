package mongoclient

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/nftescrow/base/log"
)

// Index describes one index of a collection
type Index struct {
	Collection string
	Keys       bson.D
	Unique     bool
}

// EnsureIndexes creates the given indexes, existing ones are left untouched.
// Collections are created up front since transactions can't create them on
// older servers.
func (c *Client) EnsureIndexes(ctx context.Context, indexes []Index) error {
	db := c.Database(c.DbName)
	existing, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}
	known := map[string]bool{}
	for _, name := range existing {
		known[name] = true
	}

	for _, idx := range indexes {
		if !known[idx.Collection] {
			if err := db.CreateCollection(ctx, idx.Collection); err != nil {
				if cmdErr, ok := err.(mongo.CommandError); !ok || cmdErr.Name != "NamespaceExists" {
					return err
				}
			}
			known[idx.Collection] = true
		}
		model := mongo.IndexModel{
			Keys:    idx.Keys,
			Options: options.Index().SetUnique(idx.Unique),
		}
		name, err := db.Collection(idx.Collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			log.Log().WithFields(log.Fields{
				"collection": idx.Collection,
				"keys":       idx.Keys,
				"err":        err,
			}).Error("fail to create index")
			return err
		}
		log.Log().WithFields(log.Fields{"collection": idx.Collection, "index": name}).Info("index ensured")
	}
	return nil
}
