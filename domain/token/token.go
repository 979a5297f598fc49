package token

import (
	"errors"
	"time"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/ptr"
	"github.com/x-xyz/nftescrow/domain"
)

var (
	// ErrAuthorityMismatch is returned when a transfer is not signed by the
	// source account's authority
	ErrAuthorityMismatch = errors.New("token account authority mismatch")
	// ErrInsufficientTokenBalance is returned when the source holds less than
	// the transferred amount
	ErrInsufficientTokenBalance = errors.New("insufficient token balance")
	// ErrMintMismatch is returned when source and destination hold different mints
	ErrMintMismatch = errors.New("token account mint mismatch")
	// ErrAccountExists is returned when creating an account at a taken address
	ErrAccountExists = errors.New("account already exists")
)

// Mint describes one token, an NFT has decimals 0 and supply 1
type Mint struct {
	Address       domain.Address `json:"address" bson:"address"`
	Decimals      uint8          `json:"decimals" bson:"decimals"`
	Supply        int64          `json:"supply" bson:"supply"`
	MintAuthority domain.Address `json:"mintAuthority" bson:"mintAuthority"`
	Name          string         `json:"name" bson:"name"`
	Symbol        string         `json:"symbol" bson:"symbol"`
	Uri           string         `json:"uri" bson:"uri"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
}

// IsNFT tells whether the mint can back a listing
func (m Mint) IsNFT() bool {
	return m.Decimals == 0
}

// TokenAccount holds an amount of one mint. Transfers out of it need its
// authority, which is the holder itself or, for escrows, the listing.
type TokenAccount struct {
	Address   domain.Address `json:"address" bson:"address"`
	Mint      domain.Address `json:"mint" bson:"mint"`
	Owner     domain.Address `json:"owner" bson:"owner"`
	Authority domain.Address `json:"authority" bson:"authority"`
	Amount    int64          `json:"amount" bson:"amount"`
	IsEscrow  bool           `json:"isEscrow" bson:"isEscrow"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type FindAllOptions struct {
	Offset   *int32          `bson:"-"`
	Limit    *int32          `bson:"-"`
	Owner    *domain.Address `bson:"owner,omitempty"`
	Mint     *domain.Address `bson:"mint,omitempty"`
	IsEscrow *bool           `bson:"isEscrow,omitempty"`
	NonEmpty *bool           `bson:"-"`
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

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = &owner
		return nil
	}
}

func WithMint(mint domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Mint = &mint
		return nil
	}
}

func WithIsEscrow(isEscrow bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.IsEscrow = ptr.Bool(isEscrow)
		return nil
	}
}

// WithNonEmpty keeps accounts with a positive amount only
func WithNonEmpty() FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.NonEmpty = ptr.Bool(true)
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type MintRepo interface {
	// Create returns ErrAccountExists on address collision
	Create(c ctx.Ctx, mint *Mint) error
	FindOne(c ctx.Ctx, address domain.Address) (*Mint, error)
}

type TokenAccountRepo interface {
	// Create returns ErrAccountExists on address collision
	Create(c ctx.Ctx, account *TokenAccount) error
	// Ensure creates the account unless one exists at its address
	Ensure(c ctx.Ctx, account *TokenAccount) error
	FindOne(c ctx.Ctx, address domain.Address) (*TokenAccount, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]TokenAccount, error)
	// Transfer moves amount from one account to another. The source must be
	// controlled by authority and both accounts must hold the same mint.
	Transfer(c ctx.Ctx, from, to, authority domain.Address, amount int64) error
}

// CreateMintParams creates a mint together with the creator's holder account
type CreateMintParams struct {
	Creator  domain.Address `json:"creator" validate:"required,address"`
	Decimals uint8          `json:"decimals"`
	Supply   int64          `json:"supply" validate:"gt=0"`
	Name     string         `json:"name" validate:"max=32"`
	Symbol   string         `json:"symbol" validate:"max=10"`
	Uri      string         `json:"uri" validate:"max=200"`
}

type CreateMintResult struct {
	Mint    Mint         `json:"mint"`
	Account TokenAccount `json:"account"`
}

type Holding struct {
	Account TokenAccount `json:"account"`
	Mint    *Mint        `json:"mint,omitempty"`
}

type UseCase interface {
	CreateMint(c ctx.Ctx, params CreateMintParams) (*CreateMintResult, error)
	GetMint(c ctx.Ctx, address domain.Address) (*Mint, error)
	GetAccount(c ctx.Ctx, address domain.Address) (*TokenAccount, error)
	// GetHoldings lists non-empty holder accounts of owner
	GetHoldings(c ctx.Ctx, owner domain.Address) ([]Holding, error)
}
