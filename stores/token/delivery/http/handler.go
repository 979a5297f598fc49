package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/delivery"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/token"
	"github.com/x-xyz/nftescrow/middleware"
	authMiddleware "github.com/x-xyz/nftescrow/stores/auth/delivery/http/middleware"
)

type handler struct {
	token token.UseCase
}

func New(e *echo.Echo, token token.UseCase, auth *authMiddleware.AuthMiddleware) {
	h := &handler{token}

	e.POST("/mints", h.createMint, auth.Signed())

	e.GET("/mints/:address", h.getMint, middleware.IsValidAddress("address"))

	e.GET("/token-accounts/:address", h.getAccount, middleware.IsValidAddress("address"))

	e.GET("/accounts/:owner/tokens", h.getHoldings, middleware.IsValidAddress("owner"))
}

// createMint
//
//	@Summary		Create a mint
//	@Description	Creates a mint and credits the whole supply to the creator's holder account, signed by the creator
//	@Tags			tokens
//	@Accept			json
//	@Produce		json
//	@Param			params	body		token.CreateMintParams	true	"params"
//	@Success		201		{object}	object{data=token.CreateMintResult}
//	@Failure		400
//	@Failure		403
//	@Router			/mints [post]
func (h *handler) createMint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := token.CreateMintParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := authMiddleware.RequireSigner(c, p.Creator); err != nil {
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	}

	res, err := h.token.CreateMint(ctx, p)
	if err != nil {
		ctx.WithField("err", err).Error("token.CreateMint failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// getMint
//
//	@Summary		Get a mint
//	@Tags			tokens
//	@Produce		json
//	@Param			address	path		string	true	"mint address"
//	@Success		200		{object}	object{data=token.Mint}
//	@Failure		404
//	@Router			/mints/{address} [get]
func (h *handler) getMint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.token.GetMint(ctx, domain.Address(c.Param("address")))
	if err != nil {
		ctx.WithField("err", err).Error("token.GetMint failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getAccount
//
//	@Summary		Get a token account
//	@Tags			tokens
//	@Produce		json
//	@Param			address	path		string	true	"token account address"
//	@Success		200		{object}	object{data=token.TokenAccount}
//	@Failure		404
//	@Router			/token-accounts/{address} [get]
func (h *handler) getAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.token.GetAccount(ctx, domain.Address(c.Param("address")))
	if err != nil {
		ctx.WithField("err", err).Error("token.GetAccount failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getHoldings
//
//	@Summary		Get holdings
//	@Description	Non-empty holder accounts of an owner, escrows excluded
//	@Tags			tokens
//	@Produce		json
//	@Param			owner	path		string	true	"owner address"
//	@Success		200		{object}	object{data=[]token.Holding}
//	@Router			/accounts/{owner}/tokens [get]
func (h *handler) getHoldings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.token.GetHoldings(ctx, domain.Address(c.Param("owner")))
	if err != nil {
		ctx.WithField("err", err).Error("token.GetHoldings failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
