package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/database/mongoclient"
	"github.com/x-xyz/nftescrow/base/log"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/listing"
	"github.com/x-xyz/nftescrow/service/query"
)

var Indexes = []mongoclient.Index{
	{Collection: string(domain.TableListings), Keys: bson.D{{Key: "address", Value: 1}}, Unique: true},
	{Collection: string(domain.TableListings), Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Collection: string(domain.TableListings), Keys: bson.D{{Key: "seller", Value: 1}, {Key: "createdAt", Value: -1}}},
	{Collection: string(domain.TableListings), Keys: bson.D{{Key: "nftMint", Value: 1}}},
	{Collection: string(domain.TableListingActivities), Keys: bson.D{{Key: "txHash", Value: 1}}, Unique: true},
	{Collection: string(domain.TableListingActivities), Keys: bson.D{{Key: "listing", Value: 1}, {Key: "createdAt", Value: 1}}},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) listing.Repo {
	return &impl{q}
}

// Create upserts on {address, isActive: false}. When an active listing owns
// the address the upsert collides with the unique index.
func (im *impl) Create(c ctx.Ctx, l *listing.Listing) error {
	selector := bson.M{"address": l.Address, "isActive": false}
	update := bson.M{
		"$set":   l,
		"$unset": bson.M{"buyer": "", "closedAt": ""},
	}
	if err := im.q.CustomPatch(c, domain.TableListings, selector, update, true); errors.Is(err, query.ErrDuplicateKey) {
		return domain.ErrDuplicateListing
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "listing": l.Address}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := im.q.FindOne(c, domain.TableListings, bson.M{"address": address}, res); errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "listing": address}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) selector(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) (listing.FindAllOptions, bson.M, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		return opts, nil, err
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return opts, nil, err
	}
	return opts, qry, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) ([]listing.Listing, error) {
	opts, qry, err := im.selector(c, optFns...)
	if err != nil {
		return nil, err
	}

	offset, limit := 0, listing.DefaultPageSize
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	sort := "-createdAt"
	if opts.SortBy != nil {
		sort = *opts.SortBy
		if opts.SortDir != nil && *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	res := []listing.Listing{}
	if err := im.q.SearchNSorts(c, domain.TableListings, offset, limit, []string{sort, "address"}, qry, &res); err != nil {
		c.WithField("err", err).Error("q.SearchNSorts failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Count(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) (int, error) {
	_, qry, err := im.selector(c, optFns...)
	if err != nil {
		return 0, err
	}

	n, err := im.q.Count(c, domain.TableListings, qry)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return n, nil
}

func (im *impl) Close(c ctx.Ctx, address domain.Address, params listing.CloseParams) error {
	set := bson.M{
		"isActive": false,
		"status":   params.Status,
		"closedAt": params.ClosedAt,
		"txHash":   params.TxHash,
	}
	if !params.Buyer.IsEmpty() {
		set["buyer"] = params.Buyer
	}

	selector := bson.M{"address": address, "isActive": true}
	if err := im.q.CustomPatch(c, domain.TableListings, selector, bson.M{"$set": set}, false); errors.Is(err, query.ErrNotFound) {
		return domain.ErrListingNotActive
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "listing": address}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *impl) InsertActivity(c ctx.Ctx, activity *listing.Activity) error {
	if err := im.q.Insert(c, domain.TableListingActivities, activity); err != nil {
		c.WithFields(log.Fields{"err": err, "listing": activity.Listing}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindActivities(c ctx.Ctx, address domain.Address) ([]listing.Activity, error) {
	res := []listing.Activity{}
	if err := im.q.Search(c, domain.TableListingActivities, 0, 0, "createdAt", bson.M{"listing": address}, &res); err != nil {
		c.WithFields(log.Fields{"err": err, "listing": address}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
