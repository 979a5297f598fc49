package usecase

import (
	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/log"
	pricefomatter "github.com/x-xyz/nftescrow/base/price_fomatter"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/wallet"
)

type WalletUseCaseCfg struct {
	Repo         wallet.Repo
	AllowAirdrop bool
	MaxAirdrop   domain.Lamports
}

type impl struct {
	repo         wallet.Repo
	allowAirdrop bool
	maxAirdrop   domain.Lamports
}

func New(cfg *WalletUseCaseCfg) wallet.UseCase {
	return &impl{
		repo:         cfg.Repo,
		allowAirdrop: cfg.AllowAirdrop,
		maxAirdrop:   cfg.MaxAirdrop,
	}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*wallet.Balance, error) {
	if !address.IsValid() {
		return nil, domain.ErrInvalidAddress
	}

	w, err := im.repo.FindOne(c, address)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "address": address}).Error("repo.FindOne failed")
		return nil, err
	}

	return &wallet.Balance{
		Address:  w.Address,
		Lamports: w.Lamports,
		Sol:      pricefomatter.FormatSol(domain.Lamports(w.Lamports)),
	}, nil
}

func (im *impl) Airdrop(c ctx.Ctx, address domain.Address, amount domain.Lamports) (*wallet.Balance, error) {
	if !im.allowAirdrop {
		return nil, domain.ErrAirdropDisabled
	}
	if !address.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	if amount == 0 || (im.maxAirdrop > 0 && amount > im.maxAirdrop) {
		return nil, domain.ErrBadParamInput
	}

	if err := im.repo.Credit(c, address, int64(amount)); err != nil {
		c.WithFields(log.Fields{"err": err, "address": address, "amount": amount}).Error("repo.Credit failed")
		return nil, err
	}

	c.WithFields(log.Fields{"address": address, "amount": amount}).Info("airdrop")
	return im.Get(c, address)
}
