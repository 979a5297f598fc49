package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/delivery"
	pricefomatter "github.com/x-xyz/nftescrow/base/price_fomatter"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/listing"
	"github.com/x-xyz/nftescrow/middleware"
	authMiddleware "github.com/x-xyz/nftescrow/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.UseCase
}

func New(e *echo.Echo, listing listing.UseCase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{listing}

	g := e.Group("/listings")

	g.GET("", h.browse)

	g.POST("", h.list, auth.Signed())

	g.GET("/derive", h.derive)

	g.GET("/:address", h.get, middleware.IsValidAddress("address"))

	g.GET("/:address/activities", h.activities, middleware.IsValidAddress("address"))

	g.POST("/:address/buy", h.buy, middleware.IsValidAddress("address"), auth.Signed())

	g.POST("/:address/cancel", h.cancel, middleware.IsValidAddress("address"), auth.Signed())
}

// derive
//
//	@Summary		Derive listing addresses
//	@Description	Listing and escrow addresses of a seller and mint, with their bumps
//	@Tags			listings
//	@Produce		json
//	@Param			seller	query		string	true	"seller address"
//	@Param			mint	query		string	true	"nft mint address"
//	@Success		200		{object}	object{data=listing.Derivation}
//	@Failure		400
//	@Router			/listings/derive [get]
func (h *handler) derive(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	seller := domain.Address(c.QueryParam("seller"))
	mint := domain.Address(c.QueryParam("mint"))
	if !seller.IsValid() || !mint.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	res, err := h.listing.Derive(ctx, seller, mint)
	if err != nil {
		ctx.WithField("err", err).Error("listing.Derive failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type listParams struct {
	Seller domain.Address `json:"seller" validate:"required,address" example:"9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"`
	Mint   domain.Address `json:"mint" validate:"required,address"`
	// SOL amount, at most 9 decimals
	Price string `json:"price" validate:"required" example:"1.25"`
}

// list
//
//	@Summary		List an NFT
//	@Description	Moves the NFT into escrow and opens a listing, signed by the seller
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.listParams	true	"params"
//	@Success		201		{object}	object{data=listing.Result}
//	@Failure		400
//	@Failure		401
//	@Failure		403
//	@Failure		409
//	@Router			/listings [post]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := authMiddleware.RequireSigner(c, p.Seller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	}

	price, err := pricefomatter.ParseSol(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("price %q: %w", p.Price, domain.ErrInvalidPrice))
	}

	res, err := h.listing.List(ctx, listing.ListParams{Seller: p.Seller, Mint: p.Mint, Price: price})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

type buyParams struct {
	Buyer domain.Address `json:"buyer" validate:"required,address"`
}

// buy
//
//	@Summary		Buy a listed NFT
//	@Description	Pays the listing price to the seller and moves the NFT to the buyer, signed by the buyer
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string			true	"listing address"
//	@Param			params	body		http.buyParams	true	"params"
//	@Success		200		{object}	object{data=listing.Result}
//	@Failure		402
//	@Failure		409
//	@Router			/listings/{address}/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &buyParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := authMiddleware.RequireSigner(c, p.Buyer); err != nil {
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	}

	res, err := h.listing.Buy(ctx, listing.BuyParams{
		Buyer:   p.Buyer,
		Listing: domain.Address(c.Param("address")),
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type cancelParams struct {
	Seller domain.Address `json:"seller" validate:"required,address"`
}

// cancel
//
//	@Summary		Cancel a listing
//	@Description	Returns the NFT to the seller, signed by the seller
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string				true	"listing address"
//	@Param			params	body		http.cancelParams	true	"params"
//	@Success		200		{object}	object{data=listing.Result}
//	@Failure		403
//	@Failure		409
//	@Router			/listings/{address}/cancel [post]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &cancelParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := authMiddleware.RequireSigner(c, p.Seller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	}

	res, err := h.listing.Cancel(ctx, listing.CancelParams{
		Caller:  p.Seller,
		Listing: domain.Address(c.Param("address")),
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// get
//
//	@Summary		Get a listing
//	@Tags			listings
//	@Produce		json
//	@Param			address	path		string	true	"listing address"
//	@Success		200		{object}	object{data=listing.Listing}
//	@Failure		404
//	@Router			/listings/{address} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listing.Get(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// activities
//
//	@Summary		Get listing activities
//	@Description	Transitions of every listing stored at the address, oldest first
//	@Tags			listings
//	@Produce		json
//	@Param			address	path		string	true	"listing address"
//	@Success		200		{object}	object{data=[]listing.Activity}
//	@Router			/listings/{address}/activities [get]
func (h *handler) activities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listing.Activities(ctx, domain.Address(c.Param("address")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type browseParams struct {
	Seller  *domain.Address `query:"seller"`
	Mint    *domain.Address `query:"mint"`
	Status  *listing.Status `query:"status"`
	Offset  int32           `query:"offset"`
	Limit   int32           `query:"limit"`
	SortBy  *string         `query:"sortBy"`
	SortDir *domain.SortDir `query:"sortDir"`
}

// browse
//
//	@Summary		Browse listings
//	@Description	Active listings newest first unless filtered otherwise
//	@Tags			listings
//	@Produce		json
//	@Param			seller	query		string	false	"seller address"
//	@Param			mint	query		string	false	"nft mint address"
//	@Param			status	query		string	false	"active, sold or cancelled"
//	@Param			offset	query		int		false	"offset"
//	@Param			limit	query		int		false	"page size, default 5"
//	@Param			sortBy	query		string	false	"createdAt, price or closedAt"
//	@Param			sortDir	query		int		false	"1 or -1"
//	@Success		200		{object}	object{data=listing.BrowseResult}
//	@Failure		400
//	@Router			/listings [get]
func (h *handler) browse(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &browseParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	limit := p.Limit
	if limit == 0 {
		limit = listing.DefaultPageSize
	}
	opts := []listing.FindAllOptionsFunc{listing.WithPagination(p.Offset, limit)}

	if p.Seller != nil {
		opts = append(opts, listing.WithSeller(*p.Seller))
	}
	if p.Mint != nil {
		opts = append(opts, listing.WithNftMint(*p.Mint))
	}
	if p.Status != nil {
		opts = append(opts, listing.WithStatus(*p.Status))
	}
	if p.SortBy != nil {
		dir := domain.SortDirDesc
		if p.SortDir != nil {
			dir = *p.SortDir
		}
		opts = append(opts, listing.WithSort(*p.SortBy, dir))
	}

	res, err := h.listing.Browse(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
