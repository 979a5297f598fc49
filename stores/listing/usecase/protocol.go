package usecase

import (
	"errors"
	"math"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/log"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/listing"
	"github.com/x-xyz/nftescrow/domain/token"
)

// List moves the seller's NFT into a fresh escrow owned by the listing
func (im *impl) List(c ctx.Ctx, params listing.ListParams) (res *listing.Result, err error) {
	defer func() {
		addr := domain.Address("")
		if res != nil {
			addr = res.Listing.Address
		}
		im.report(c, listing.ActivityList, addr, err)
	}()

	if !params.Seller.IsValid() || !params.Mint.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	if params.Price == 0 || params.Price > math.MaxInt64 {
		return nil, domain.ErrInvalidPrice
	}

	derivation, err := im.Derive(c, params.Seller, params.Mint)
	if err != nil {
		return nil, err
	}
	holder, err := im.deriver.TokenAccount(params.Seller, params.Mint)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	txHash := newTxHash()
	l := &listing.Listing{
		Address:         derivation.Listing,
		Seller:          params.Seller,
		NftMint:         params.Mint,
		NftTokenAccount: derivation.Escrow,
		Price:           int64(params.Price),
		IsActive:        true,
		Status:          listing.StatusActive,
		CreatedAt:       now.Unix(),
		Bump:            derivation.ListingBump,
		EscrowBump:      derivation.EscrowBump,
		TxHash:          txHash,
	}
	c = ctx.WithLogField(c, "listing", l.Address)

	if err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.checkAsset(c, params.Seller, params.Mint, holder.Address); err != nil {
			return err
		}

		if err := im.listingRepo.Create(c, l); err != nil {
			return err
		}

		escrow := &token.TokenAccount{
			Address:   derivation.Escrow,
			Mint:      params.Mint,
			Owner:     derivation.Listing,
			Authority: derivation.Listing,
			IsEscrow:  true,
			CreatedAt: now,
		}
		if err := im.accountRepo.Ensure(c, escrow); err != nil {
			return err
		}
		if err := im.accountRepo.Transfer(c, holder.Address, derivation.Escrow, params.Seller, 1); err != nil {
			return xerrors.Errorf("escrow deposit: %w", err)
		}

		return im.listingRepo.InsertActivity(c, &listing.Activity{
			TxHash:    txHash,
			Type:      listing.ActivityList,
			Listing:   l.Address,
			Seller:    l.Seller,
			NftMint:   l.NftMint,
			Price:     l.Price,
			Signer:    params.Seller,
			CreatedAt: now,
		})
	}); err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{"seller": l.Seller, "mint": l.NftMint, "price": l.Price}).Info("listed")
	im.committed(c, listing.ActivityList, l)
	return &listing.Result{Listing: *l, TxHash: txHash}, nil
}

// checkAsset requires the seller's holder account to hold the whole of an NFT
func (im *impl) checkAsset(c ctx.Ctx, seller, mint, holder domain.Address) error {
	m, err := im.mintRepo.FindOne(c, mint)
	if errors.Is(err, domain.ErrNotFound) {
		return xerrors.Errorf("unknown mint %s: %w", mint, domain.ErrInvalidAsset)
	} else if err != nil {
		return err
	}
	if !m.IsNFT() {
		return xerrors.Errorf("mint has %d decimals: %w", m.Decimals, domain.ErrInvalidAsset)
	}

	account, err := im.accountRepo.FindOne(c, holder)
	if errors.Is(err, domain.ErrNotFound) {
		return xerrors.Errorf("seller holds no %s: %w", mint, domain.ErrInvalidAsset)
	} else if err != nil {
		return err
	}
	if !account.Owner.Equals(seller) || !account.Authority.Equals(seller) {
		return domain.ErrInvalidOwner
	}
	if account.Amount != 1 {
		return xerrors.Errorf("seller holds %d: %w", account.Amount, domain.ErrInvalidAsset)
	}
	return nil
}

// Buy pays the seller and releases the escrow to the buyer
func (im *impl) Buy(c ctx.Ctx, params listing.BuyParams) (res *listing.Result, err error) {
	defer func() { im.report(c, listing.ActivityBuy, params.Listing, err) }()

	if !params.Buyer.IsValid() {
		return nil, domain.ErrInvalidAddress
	}

	now := timeNow()
	txHash := newTxHash()
	c = ctx.WithLogField(c, "listing", params.Listing)

	var closed *listing.Listing
	if err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		l, err := im.listingRepo.FindOne(c, params.Listing)
		if err != nil {
			return err
		}
		if !l.IsActive {
			return domain.ErrListingNotActive
		}

		if err := im.walletRepo.Debit(c, params.Buyer, l.Price); err != nil {
			return err
		}

		closeParams := listing.CloseParams{
			Status:   listing.StatusSold,
			Buyer:    params.Buyer,
			ClosedAt: now.Unix(),
			TxHash:   txHash,
		}
		if err := im.listingRepo.Close(c, l.Address, closeParams); err != nil {
			return err
		}

		if err := im.walletRepo.Credit(c, l.Seller, l.Price); err != nil {
			return err
		}

		if err := im.release(c, l, params.Buyer, now); err != nil {
			return err
		}

		if err := im.listingRepo.InsertActivity(c, &listing.Activity{
			TxHash:    txHash,
			Type:      listing.ActivityBuy,
			Listing:   l.Address,
			Seller:    l.Seller,
			Buyer:     params.Buyer,
			NftMint:   l.NftMint,
			Price:     l.Price,
			Signer:    params.Buyer,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		closed = applyClose(l, closeParams)
		return nil
	}); err != nil {
		return nil, err
	}

	c.WithFields(log.Fields{"buyer": params.Buyer, "seller": closed.Seller, "price": closed.Price}).Info("sold")
	im.committed(c, listing.ActivityBuy, closed)
	return &listing.Result{Listing: *closed, TxHash: txHash}, nil
}

// Cancel returns the escrowed NFT to the seller
func (im *impl) Cancel(c ctx.Ctx, params listing.CancelParams) (res *listing.Result, err error) {
	defer func() { im.report(c, listing.ActivityCancel, params.Listing, err) }()

	now := timeNow()
	txHash := newTxHash()
	c = ctx.WithLogField(c, "listing", params.Listing)

	var closed *listing.Listing
	if err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		l, err := im.listingRepo.FindOne(c, params.Listing)
		if err != nil {
			return err
		}
		if !l.Seller.Equals(params.Caller) {
			return domain.ErrUnauthorizedCancel
		}
		if !l.IsActive {
			return domain.ErrListingNotActive
		}

		closeParams := listing.CloseParams{
			Status:   listing.StatusCancelled,
			ClosedAt: now.Unix(),
			TxHash:   txHash,
		}
		if err := im.listingRepo.Close(c, l.Address, closeParams); err != nil {
			return err
		}

		if err := im.release(c, l, l.Seller, now); err != nil {
			return err
		}

		if err := im.listingRepo.InsertActivity(c, &listing.Activity{
			TxHash:    txHash,
			Type:      listing.ActivityCancel,
			Listing:   l.Address,
			Seller:    l.Seller,
			NftMint:   l.NftMint,
			Price:     l.Price,
			Signer:    params.Caller,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		closed = applyClose(l, closeParams)
		return nil
	}); err != nil {
		return nil, err
	}

	c.WithField("seller", closed.Seller).Info("cancelled")
	im.committed(c, listing.ActivityCancel, closed)
	return &listing.Result{Listing: *closed, TxHash: txHash}, nil
}

// release moves the escrowed unit to the holder account of to, which is
// created if needed. The listing signs as escrow authority.
func (im *impl) release(c ctx.Ctx, l *listing.Listing, to domain.Address, now time.Time) error {
	holder, err := im.deriver.TokenAccount(to, l.NftMint)
	if err != nil {
		return err
	}

	if err := im.accountRepo.Ensure(c, &token.TokenAccount{
		Address:   holder.Address,
		Mint:      l.NftMint,
		Owner:     to,
		Authority: to,
		CreatedAt: now,
	}); err != nil {
		return err
	}

	if err := im.accountRepo.Transfer(c, l.NftTokenAccount, holder.Address, l.Address, 1); err != nil {
		return xerrors.Errorf("escrow release: %w", err)
	}
	return nil
}

func applyClose(l *listing.Listing, params listing.CloseParams) *listing.Listing {
	closed := *l
	closed.IsActive = false
	closed.Status = params.Status
	closed.Buyer = params.Buyer
	closed.ClosedAt = params.ClosedAt
	closed.TxHash = params.TxHash
	return &closed
}
