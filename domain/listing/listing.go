package listing

import (
	"time"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/domain"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSold      Status = "sold"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusSold, StatusCancelled:
		return true
	}
	return false
}

// Listing is the sale offer of one NFT, stored at the address derived from
// seller and mint. The escrow token account with authority Address holds the
// NFT for as long as IsActive is true.
type Listing struct {
	Address         domain.Address `json:"address" bson:"address"`
	Seller          domain.Address `json:"seller" bson:"seller"`
	NftMint         domain.Address `json:"nftMint" bson:"nftMint"`
	NftTokenAccount domain.Address `json:"nftTokenAccount" bson:"nftTokenAccount"`
	Price           int64          `json:"price" bson:"price"`
	IsActive        bool           `json:"isActive" bson:"isActive"`
	Status          Status         `json:"status" bson:"status"`
	Buyer           domain.Address `json:"buyer,omitempty" bson:"buyer,omitempty"`
	CreatedAt       int64          `json:"createdAt" bson:"createdAt"`
	ClosedAt        int64          `json:"closedAt,omitempty" bson:"closedAt,omitempty"`
	Bump            uint8          `json:"bump" bson:"bump"`
	EscrowBump      uint8          `json:"escrowBump" bson:"escrowBump"`
	TxHash          domain.TxHash  `json:"txHash" bson:"txHash"`
}

// IsTerminal tells whether no transition can touch the listing anymore
func (l Listing) IsTerminal() bool {
	return !l.IsActive
}

type ActivityType string

const (
	ActivityList   ActivityType = "list"
	ActivityBuy    ActivityType = "buy"
	ActivityCancel ActivityType = "cancel"
)

// Activity records one committed transition of a listing
type Activity struct {
	TxHash    domain.TxHash  `json:"txHash" bson:"txHash"`
	Type      ActivityType   `json:"type" bson:"type"`
	Listing   domain.Address `json:"listing" bson:"listing"`
	Seller    domain.Address `json:"seller" bson:"seller"`
	Buyer     domain.Address `json:"buyer,omitempty" bson:"buyer,omitempty"`
	NftMint   domain.Address `json:"nftMint" bson:"nftMint"`
	Price     int64          `json:"price" bson:"price"`
	Signer    domain.Address `json:"signer" bson:"signer"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

type FindAllOptions struct {
	Offset  *int32          `bson:"-"`
	Limit   *int32          `bson:"-"`
	SortBy  *string         `bson:"-"`
	SortDir *domain.SortDir `bson:"-"`
	Seller  *domain.Address `bson:"seller,omitempty"`
	NftMint *domain.Address `bson:"nftMint,omitempty"`
	Status  *Status         `bson:"status,omitempty"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if !seller.IsValid() {
			return domain.ErrInvalidAddress
		}
		options.Seller = &seller
		return nil
	}
}

func WithNftMint(mint domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if !mint.IsValid() {
			return domain.ErrInvalidAddress
		}
		options.NftMint = &mint
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if !status.IsValid() {
			return domain.ErrBadParamInput
		}
		options.Status = &status
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if offset < 0 || limit <= 0 || limit > MaxPageSize {
			return domain.ErrBadParamInput
		}
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

var sortables = map[string]bool{
	"createdAt": true,
	"price":     true,
	"closedAt":  true,
}

func WithSort(sortBy string, sortDir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if !sortables[sortBy] {
			return domain.ErrBadParamInput
		}
		if sortDir != domain.SortDirAsc && sortDir != domain.SortDirDesc {
			return domain.ErrBadParamInput
		}
		options.SortBy = &sortBy
		options.SortDir = &sortDir
		return nil
	}
}

// CloseParams is the terminal state written by Buy or Cancel
type CloseParams struct {
	Status   Status
	Buyer    domain.Address
	ClosedAt int64
	TxHash   domain.TxHash
}

type Repo interface {
	// Create stores an active listing at its address. A terminal listing at
	// the same address is overwritten, an active one makes it fail with
	// domain.ErrDuplicateListing.
	Create(c ctx.Ctx, listing *Listing) error
	FindOne(c ctx.Ctx, address domain.Address) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]Listing, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	// Close flips an active listing to a terminal state, and returns
	// domain.ErrListingNotActive if it is not active anymore
	Close(c ctx.Ctx, address domain.Address, params CloseParams) error
	InsertActivity(c ctx.Ctx, activity *Activity) error
	FindActivities(c ctx.Ctx, address domain.Address) ([]Activity, error)
}

type Derivation struct {
	Listing     domain.Address `json:"listing"`
	ListingBump uint8          `json:"listingBump"`
	Escrow      domain.Address `json:"escrow"`
	EscrowBump  uint8          `json:"escrowBump"`
}

type ListParams struct {
	Seller domain.Address
	Mint   domain.Address
	Price  domain.Lamports
}

type BuyParams struct {
	Buyer   domain.Address
	Listing domain.Address
}

type CancelParams struct {
	Caller  domain.Address
	Listing domain.Address
}

type Result struct {
	Listing Listing       `json:"listing"`
	TxHash  domain.TxHash `json:"txHash"`
}

type BrowseResult struct {
	Items []Listing `json:"items"`
	Count int       `json:"count"`
}

type UseCase interface {
	Derive(c ctx.Ctx, seller, mint domain.Address) (*Derivation, error)
	List(c ctx.Ctx, params ListParams) (*Result, error)
	Buy(c ctx.Ctx, params BuyParams) (*Result, error)
	Cancel(c ctx.Ctx, params CancelParams) (*Result, error)
	Get(c ctx.Ctx, address domain.Address) (*Listing, error)
	// Browse lists active listings newest first unless opts say otherwise
	Browse(c ctx.Ctx, opts ...FindAllOptionsFunc) (*BrowseResult, error)
	Activities(c ctx.Ctx, address domain.Address) ([]Activity, error)
}
