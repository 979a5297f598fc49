package wallet

import (
	"time"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/domain"
)

// Wallet is the native balance of an identity in lamports
type Wallet struct {
	Address   domain.Address `json:"address" bson:"address"`
	Lamports  int64          `json:"lamports" bson:"lamports"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	// FindOne returns a zero balance wallet when address was never credited
	FindOne(c ctx.Ctx, address domain.Address) (*Wallet, error)
	// Debit returns domain.ErrInsufficientFunds and changes nothing when the
	// balance is lower than lamports
	Debit(c ctx.Ctx, address domain.Address, lamports int64) error
	// Credit creates the wallet if needed and returns domain.ErrBalanceOverflow
	// when the new balance would not fit
	Credit(c ctx.Ctx, address domain.Address, lamports int64) error
}

type Balance struct {
	Address  domain.Address `json:"address"`
	Lamports int64          `json:"lamports"`
	Sol      string         `json:"sol"`
}

type AirdropParams struct {
	Amount string `json:"amount" validate:"required"`
}

type UseCase interface {
	Get(c ctx.Ctx, address domain.Address) (*Balance, error)
	// Airdrop credits amount SOL to address, only on ledgers that allow it
	Airdrop(c ctx.Ctx, address domain.Address, amount domain.Lamports) (*Balance, error)
}
