package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/database/mongoclient"
	"github.com/x-xyz/nftescrow/base/log"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/token"
	"github.com/x-xyz/nftescrow/service/query"
)

var Indexes = []mongoclient.Index{
	{Collection: string(domain.TableMints), Keys: bson.D{{Key: "address", Value: 1}}, Unique: true},
	{Collection: string(domain.TableTokenAccounts), Keys: bson.D{{Key: "address", Value: 1}}, Unique: true},
	{Collection: string(domain.TableTokenAccounts), Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
}

type mintImpl struct {
	q query.Mongo
}

func NewMint(q query.Mongo) token.MintRepo {
	return &mintImpl{q}
}

func (im *mintImpl) Create(c ctx.Ctx, mint *token.Mint) error {
	if err := im.q.Insert(c, domain.TableMints, mint); errors.Is(err, query.ErrDuplicateKey) {
		return token.ErrAccountExists
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "mint": mint.Address}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *mintImpl) FindOne(c ctx.Ctx, address domain.Address) (*token.Mint, error) {
	res := &token.Mint{}
	if err := im.q.FindOne(c, domain.TableMints, bson.M{"address": address}, res); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "mint": address}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}
