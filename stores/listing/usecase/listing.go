package usecase

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/log"
	"github.com/x-xyz/nftescrow/base/metrics"
	"github.com/x-xyz/nftescrow/base/pda"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/keys"
	"github.com/x-xyz/nftescrow/domain/listing"
	"github.com/x-xyz/nftescrow/domain/token"
	"github.com/x-xyz/nftescrow/domain/wallet"
	"github.com/x-xyz/nftescrow/service/cache"
	"github.com/x-xyz/nftescrow/service/notifier"
	"github.com/x-xyz/nftescrow/service/query"
	"github.com/x-xyz/nftescrow/service/redis"
)

var (
	timeNow   = time.Now
	newTxHash = func() domain.TxHash {
		return domain.TxHash(uuid.New().String())
	}

	met = metrics.New("listing")

	browseVersionKey = keys.RedisKey(keys.PfxListingBrowse, "version")
)

type ListingUseCaseCfg struct {
	ListingRepo listing.Repo
	MintRepo    token.MintRepo
	AccountRepo token.TokenAccountRepo
	WalletRepo  wallet.Repo
	Transactor  query.Transactor
	Deriver     *pda.Deriver
	Notifier    notifier.Service

	// optional, terminal listings only
	ListingCache cache.Service
	// optional, Redis holds the cache versions and is needed by both caches
	BrowseCache cache.Service
	Redis       redis.Service
}

type impl struct {
	listingRepo listing.Repo
	mintRepo    token.MintRepo
	accountRepo token.TokenAccountRepo
	walletRepo  wallet.Repo
	tx          query.Transactor
	deriver     *pda.Deriver
	notifier    notifier.Service

	listingCache cache.Service
	browseCache  cache.Service
	redis        redis.Service
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	n := cfg.Notifier
	if n == nil {
		n = notifier.NewNoop()
	}

	return &impl{
		listingRepo:  cfg.ListingRepo,
		mintRepo:     cfg.MintRepo,
		accountRepo:  cfg.AccountRepo,
		walletRepo:   cfg.WalletRepo,
		tx:           cfg.Transactor,
		deriver:      cfg.Deriver,
		notifier:     n,
		listingCache: cfg.ListingCache,
		browseCache:  cfg.BrowseCache,
		redis:        cfg.Redis,
	}
}

func (im *impl) Derive(c ctx.Ctx, seller, mint domain.Address) (*listing.Derivation, error) {
	l, err := im.deriver.Listing(seller, mint)
	if err != nil {
		return nil, err
	}
	e, err := im.deriver.Escrow(l.Address)
	if err != nil {
		return nil, err
	}
	return &listing.Derivation{
		Listing:     l.Address,
		ListingBump: l.Bump,
		Escrow:      e.Address,
		EscrowBump:  e.Bump,
	}, nil
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*listing.Listing, error) {
	key, cached := im.listingKey(c, address)
	if cached {
		res := &listing.Listing{}
		if err := im.listingCache.Get(c, key, res); err == nil {
			return res, nil
		} else if !errors.Is(err, cache.ErrNotFound) {
			c.WithFields(log.Fields{"err": err, "listing": address}).Warn("listingCache.Get failed")
		}
	}

	res, err := im.listingRepo.FindOne(c, address)
	if err != nil {
		return nil, err
	}

	if cached && res.IsTerminal() {
		im.cacheTerminal(c, key, res)
	}
	return res, nil
}

func listingVersionKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxListing, "version", string(address))
}

// listingKey names the cache entry of the current lifetime of address. A
// re-list bumps the version, so entries of earlier lifetimes are never read.
func (im *impl) listingKey(c ctx.Ctx, address domain.Address) (string, bool) {
	if im.listingCache == nil {
		return "", false
	}
	version, ok := im.version(c, listingVersionKey(address))
	if !ok {
		return "", false
	}
	return keys.RedisKey(string(address), version), true
}

// version reads a counter bumped on every transition, "0" when never bumped
func (im *impl) version(c ctx.Ctx, key string) (string, bool) {
	if im.redis == nil {
		return "", false
	}
	v, err := im.redis.Get(c, key)
	if errors.Is(err, redis.ErrNotFound) {
		return "0", true
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("redis.Get version failed")
		return "", false
	}
	return string(v), true
}

func (im *impl) cacheTerminal(c ctx.Ctx, key string, l *listing.Listing) {
	if err := im.listingCache.Set(c, key, l); err != nil {
		c.WithFields(log.Fields{"err": err, "listing": l.Address}).Warn("listingCache.Set failed")
	}
}

func (im *impl) Browse(c ctx.Ctx, optFns ...listing.FindAllOptionsFunc) (*listing.BrowseResult, error) {
	optFns = append([]listing.FindAllOptionsFunc{listing.WithStatus(listing.StatusActive)}, optFns...)

	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	getter := func() (interface{}, error) {
		items, err := im.listingRepo.FindAll(c, optFns...)
		if err != nil {
			return nil, err
		}
		count, err := im.listingRepo.Count(c, optFns...)
		if err != nil {
			return nil, err
		}
		return &listing.BrowseResult{Items: items, Count: count}, nil
	}

	key, ok := im.browseKey(c, opts)
	if !ok {
		res, err := getter()
		if err != nil {
			return nil, err
		}
		return res.(*listing.BrowseResult), nil
	}

	res := &listing.BrowseResult{}
	if err := im.browseCache.GetByFunc(c, key, res, getter); err != nil {
		c.WithField("err", err).Error("browseCache.GetByFunc failed")
		return nil, err
	}
	return res, nil
}

// browseKey names a page within the current browse version
func (im *impl) browseKey(c ctx.Ctx, opts listing.FindAllOptions) (string, bool) {
	if im.browseCache == nil {
		return "", false
	}
	version, ok := im.version(c, browseVersionKey)
	if !ok {
		return "", false
	}

	raw, err := json.Marshal(opts)
	if err != nil {
		return "", false
	}
	return keys.RedisKey(version, keys.MD5(string(raw))), true
}

func (im *impl) invalidateBrowse(c ctx.Ctx) {
	if im.redis == nil {
		return
	}
	if _, err := im.redis.Incrby(c, browseVersionKey, 1); err != nil {
		c.WithField("err", err).Warn("redis.Incrby browse version failed")
	}
}

func (im *impl) Activities(c ctx.Ctx, address domain.Address) ([]listing.Activity, error) {
	return im.listingRepo.FindActivities(c, address)
}

// committed runs the after-commit side effects of a transition
func (im *impl) committed(c ctx.Ctx, typ listing.ActivityType, l *listing.Listing) {
	im.invalidateBrowse(c)
	im.invalidateListing(c, l)
	im.notifier.Notify(c, notifier.Event{Type: typ, Listing: *l, TxHash: l.TxHash})
}

// invalidateListing moves l to a new cache lifetime, seeding it when terminal
func (im *impl) invalidateListing(c ctx.Ctx, l *listing.Listing) {
	if im.redis == nil || im.listingCache == nil {
		return
	}
	v, err := im.redis.Incrby(c, listingVersionKey(l.Address), 1)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "listing": l.Address}).Warn("redis.Incrby listing version failed")
		return
	}
	if l.IsTerminal() {
		im.cacheTerminal(c, keys.RedisKey(string(l.Address), strconv.FormatInt(v, 10)), l)
	}
}

// expected rejections are not logged as errors
var rejections = []error{
	domain.ErrInvalidAsset,
	domain.ErrInvalidOwner,
	domain.ErrInvalidPrice,
	domain.ErrInvalidAddress,
	domain.ErrDuplicateListing,
	domain.ErrListingNotActive,
	domain.ErrUnauthorizedCancel,
	domain.ErrInsufficientFunds,
	domain.ErrNotFound,
}

func isRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

func (im *impl) report(c ctx.Ctx, typ listing.ActivityType, address domain.Address, err error) {
	result := "ok"
	if err != nil {
		result = "error"
		if code := domain.CodeOf(err); code != domain.ErrorCodeNone {
			result = strconv.Itoa(int(code))
		}
		fields := log.Fields{"err": err, "type": typ, "listing": address}
		if isRejection(err) {
			c.WithFields(fields).Warn("transition rejected")
		} else {
			c.WithFields(fields).Error("transition failed")
		}
	}
	met.BumpSum("transition", 1, "type", string(typ), "result", result)
}
