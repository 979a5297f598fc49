package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/delivery"
	pricefomatter "github.com/x-xyz/nftescrow/base/price_fomatter"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/wallet"
	"github.com/x-xyz/nftescrow/middleware"
)

type handler struct {
	wallet wallet.UseCase
}

func New(e *echo.Echo, wallet wallet.UseCase) {
	h := &handler{wallet}

	g := e.Group("/wallets/:address", middleware.IsValidAddress("address"))

	g.GET("", h.get)

	g.POST("/airdrop", h.airdrop)
}

// get
//
//	@Summary		Get wallet balance
//	@Tags			wallets
//	@Produce		json
//	@Param			address	path		string	true	"wallet address"
//	@Success		200		{object}	object{data=wallet.Balance}
//	@Router			/wallets/{address} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.wallet.Get(ctx, domain.Address(c.Param("address")))
	if err != nil {
		ctx.WithField("err", err).Error("wallet.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// airdrop
//
//	@Summary		Airdrop SOL
//	@Description	Credits SOL to a wallet, only on ledgers that allow airdrops
//	@Tags			wallets
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string				true	"wallet address"
//	@Param			params	body		wallet.AirdropParams	true	"params"
//	@Success		200		{object}	object{data=wallet.Balance}
//	@Failure		400
//	@Failure		403
//	@Router			/wallets/{address}/airdrop [post]
func (h *handler) airdrop(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &wallet.AirdropParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	amount, err := pricefomatter.ParseSol(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.wallet.Airdrop(ctx, domain.Address(c.Param("address")), amount)
	if err != nil {
		ctx.WithField("err", err).Error("wallet.Airdrop failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
