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

type accountImpl struct {
	q query.Mongo
}

func NewTokenAccount(q query.Mongo) token.TokenAccountRepo {
	return &accountImpl{q}
}

func (im *accountImpl) Create(c ctx.Ctx, account *token.TokenAccount) error {
	if err := im.q.Insert(c, domain.TableTokenAccounts, account); errors.Is(err, query.ErrDuplicateKey) {
		return token.ErrAccountExists
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "account": account.Address}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *accountImpl) Ensure(c ctx.Ctx, account *token.TokenAccount) error {
	update := bson.M{"$setOnInsert": account}
	if err := im.q.CustomPatch(c, domain.TableTokenAccounts, bson.M{"address": account.Address}, update, true); err != nil {
		c.WithFields(log.Fields{"err": err, "account": account.Address}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *accountImpl) FindOne(c ctx.Ctx, address domain.Address) (*token.TokenAccount, error) {
	res := &token.TokenAccount{}
	if err := im.q.FindOne(c, domain.TableTokenAccounts, bson.M{"address": address}, res); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "account": address}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *accountImpl) FindAll(c ctx.Ctx, optFns ...token.FindAllOptionsFunc) ([]token.TokenAccount, error) {
	opts, err := token.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("token.GetFindAllOptions failed")
		return nil, err
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	if opts.NonEmpty != nil && *opts.NonEmpty {
		qry["amount"] = bson.M{"$gt": 0}
	}

	offset, limit := 0, 0
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	res := []token.TokenAccount{}
	if err := im.q.Search(c, domain.TableTokenAccounts, offset, limit, "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

// Transfer is only atomic when run inside query.Transactor.RunWithTransaction
func (im *accountImpl) Transfer(c ctx.Ctx, from, to, authority domain.Address, amount int64) error {
	if amount <= 0 || from.Equals(to) {
		return domain.ErrBadParamInput
	}

	src, err := im.FindOne(c, from)
	if err != nil {
		return err
	}
	if !src.Authority.Equals(authority) {
		c.WithFields(log.Fields{"account": from, "authority": authority}).Warn("transfer with wrong authority")
		return token.ErrAuthorityMismatch
	}
	if src.Amount < amount {
		return token.ErrInsufficientTokenBalance
	}

	dst, err := im.FindOne(c, to)
	if err != nil {
		return err
	}
	if !dst.Mint.Equals(src.Mint) {
		return token.ErrMintMismatch
	}

	debit := bson.M{
		"address":   from,
		"authority": authority,
		"amount":    bson.M{"$gte": amount},
	}
	if err := im.q.CustomPatch(c, domain.TableTokenAccounts, debit, bson.M{"$inc": bson.M{"amount": -amount}}, false); errors.Is(err, query.ErrNotFound) {
		return token.ErrInsufficientTokenBalance
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "account": from}).Error("debit token account failed")
		return err
	}

	credit := bson.M{
		"address": to,
		"mint":    src.Mint,
	}
	if err := im.q.CustomPatch(c, domain.TableTokenAccounts, credit, bson.M{"$inc": bson.M{"amount": amount}}, false); errors.Is(err, query.ErrNotFound) {
		return token.ErrMintMismatch
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "account": to}).Error("credit token account failed")
		return err
	}

	return nil
}
