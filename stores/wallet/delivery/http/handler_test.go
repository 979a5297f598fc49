package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/signature"
	"github.com/x-xyz/nftescrow/base/validator"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/wallet"
	walletMocks "github.com/x-xyz/nftescrow/domain/wallet/mocks"
)

func TestAirdrop(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	e.Validator = validator.NewCustomValidator(validator.New())

	_, addr, err := signature.GenerateKey()
	req.NoError(err)

	uc := &walletMocks.UseCase{}
	h := &handler{uc}

	call := func(body string) int {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(r, rec)
		c.Set("ctx", ctx.Background())
		c.SetParamNames("address")
		c.SetParamValues(string(addr))
		req.NoError(h.airdrop(c))
		return rec.Code
	}

	uc.On("Airdrop", mock.Anything, addr, domain.Lamports(2_500_000_000)).
		Return(&wallet.Balance{Address: addr, Lamports: 2_500_000_000, Sol: "2.5"}, nil).Once()
	req.Equal(http.StatusOK, call(`{"amount":"2.5"}`))

	uc.On("Airdrop", mock.Anything, addr, domain.Lamports(1_000_000_000)).
		Return(nil, domain.ErrAirdropDisabled).Once()
	req.Equal(http.StatusForbidden, call(`{"amount":"1"}`))

	req.Equal(http.StatusBadRequest, call(`{"amount":"abc"}`))
	req.Equal(http.StatusBadRequest, call(`{}`))

	uc.AssertExpectations(t)
}
