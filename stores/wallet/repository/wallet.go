package repository

import (
	"errors"
	"math"
	"time"

	ethmath "github.com/ethereum/go-ethereum/common/math"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/database/mongoclient"
	"github.com/x-xyz/nftescrow/base/log"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/wallet"
	"github.com/x-xyz/nftescrow/service/query"
)

var timeNow = time.Now

var Indexes = []mongoclient.Index{
	{Collection: string(domain.TableWallets), Keys: bson.D{{Key: "address", Value: 1}}, Unique: true},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) wallet.Repo {
	return &impl{q}
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address) (*wallet.Wallet, error) {
	res := &wallet.Wallet{}
	if err := im.q.FindOne(c, domain.TableWallets, bson.M{"address": address}, res); errors.Is(err, query.ErrNotFound) {
		return &wallet.Wallet{Address: address}, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "address": address}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Debit(c ctx.Ctx, address domain.Address, lamports int64) error {
	if lamports <= 0 {
		return domain.ErrBadParamInput
	}

	selector := bson.M{
		"address":  address,
		"lamports": bson.M{"$gte": lamports},
	}
	update := bson.M{
		"$inc": bson.M{"lamports": -lamports},
		"$set": bson.M{"updatedAt": timeNow()},
	}
	if err := im.q.CustomPatch(c, domain.TableWallets, selector, update, false); errors.Is(err, query.ErrNotFound) {
		return domain.ErrInsufficientFunds
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "address": address}).Error("debit wallet failed")
		return err
	}
	return nil
}

func (im *impl) Credit(c ctx.Ctx, address domain.Address, lamports int64) error {
	if lamports <= 0 {
		return domain.ErrBadParamInput
	}

	cur, err := im.FindOne(c, address)
	if err != nil {
		return err
	}
	if sum, overflow := ethmath.SafeAdd(uint64(cur.Lamports), uint64(lamports)); overflow || sum > math.MaxInt64 {
		return domain.ErrBalanceOverflow
	}

	update := bson.M{
		"$inc": bson.M{"lamports": lamports},
		"$set": bson.M{"updatedAt": timeNow()},
	}
	if err := im.q.CustomPatch(c, domain.TableWallets, bson.M{"address": address}, update, true); err != nil {
		c.WithFields(log.Fields{"err": err, "address": address}).Error("credit wallet failed")
		return err
	}
	return nil
}
