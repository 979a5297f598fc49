package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/log"
	"github.com/x-xyz/nftescrow/base/pda"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/token"
	"github.com/x-xyz/nftescrow/service/query"
)

var timeNow = time.Now

type TokenUseCaseCfg struct {
	MintRepo    token.MintRepo
	AccountRepo token.TokenAccountRepo
	Transactor  query.Transactor
	Deriver     *pda.Deriver
}

type impl struct {
	mintRepo    token.MintRepo
	accountRepo token.TokenAccountRepo
	tx          query.Transactor
	deriver     *pda.Deriver
}

func New(cfg *TokenUseCaseCfg) token.UseCase {
	return &impl{
		mintRepo:    cfg.MintRepo,
		accountRepo: cfg.AccountRepo,
		tx:          cfg.Transactor,
		deriver:     cfg.Deriver,
	}
}

func (im *impl) CreateMint(c ctx.Ctx, params token.CreateMintParams) (*token.CreateMintResult, error) {
	if !params.Creator.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	if params.Supply <= 0 {
		return nil, domain.ErrBadParamInput
	}

	nonce := uuid.New()
	mintAddr, err := im.deriver.Mint(params.Creator, nonce[:])
	if err != nil {
		c.WithFields(log.Fields{"err": err, "creator": params.Creator}).Error("deriver.Mint failed")
		return nil, err
	}
	holder, err := im.deriver.TokenAccount(params.Creator, mintAddr.Address)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "creator": params.Creator}).Error("deriver.TokenAccount failed")
		return nil, err
	}

	now := timeNow()
	res := &token.CreateMintResult{
		Mint: token.Mint{
			Address:       mintAddr.Address,
			Decimals:      params.Decimals,
			Supply:        params.Supply,
			MintAuthority: params.Creator,
			Name:          params.Name,
			Symbol:        params.Symbol,
			Uri:           params.Uri,
			CreatedAt:     now,
		},
		Account: token.TokenAccount{
			Address:   holder.Address,
			Mint:      mintAddr.Address,
			Owner:     params.Creator,
			Authority: params.Creator,
			Amount:    params.Supply,
			CreatedAt: now,
		},
	}

	if err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.mintRepo.Create(c, &res.Mint); err != nil {
			return err
		}
		return im.accountRepo.Create(c, &res.Account)
	}); err != nil {
		c.WithFields(log.Fields{"err": err, "creator": params.Creator}).Error("create mint failed")
		return nil, err
	}

	c.WithFields(log.Fields{"mint": res.Mint.Address, "creator": params.Creator, "supply": params.Supply}).Info("mint created")
	return res, nil
}

func (im *impl) GetMint(c ctx.Ctx, address domain.Address) (*token.Mint, error) {
	return im.mintRepo.FindOne(c, address)
}

func (im *impl) GetAccount(c ctx.Ctx, address domain.Address) (*token.TokenAccount, error) {
	return im.accountRepo.FindOne(c, address)
}

func (im *impl) GetHoldings(c ctx.Ctx, owner domain.Address) ([]token.Holding, error) {
	if !owner.IsValid() {
		return nil, domain.ErrInvalidAddress
	}

	accounts, err := im.accountRepo.FindAll(c, token.WithOwner(owner), token.WithIsEscrow(false), token.WithNonEmpty())
	if err != nil {
		c.WithFields(log.Fields{"err": err, "owner": owner}).Error("accountRepo.FindAll failed")
		return nil, err
	}

	res := make([]token.Holding, 0, len(accounts))
	for _, a := range accounts {
		h := token.Holding{Account: a}
		if mint, err := im.mintRepo.FindOne(c, a.Mint); err == nil {
			h.Mint = mint
		} else if !errors.Is(err, domain.ErrNotFound) {
			c.WithFields(log.Fields{"err": err, "mint": a.Mint}).Error("mintRepo.FindOne failed")
			return nil, err
		}
		res = append(res, h)
	}
	return res, nil
}
