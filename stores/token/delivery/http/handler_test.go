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
	"github.com/x-xyz/nftescrow/domain/token"
	tokenMocks "github.com/x-xyz/nftescrow/domain/token/mocks"
	authMiddleware "github.com/x-xyz/nftescrow/stores/auth/delivery/http/middleware"
)

func newContext(e *echo.Echo, body string, signer domain.Address) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/mints", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	authMiddleware.SetSigner(c, signer)
	return c, rec
}

func TestCreateMint(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	e.Validator = validator.NewCustomValidator(validator.New())

	_, creator, err := signature.GenerateKey()
	req.NoError(err)
	_, other, err := signature.GenerateKey()
	req.NoError(err)

	uc := &tokenMocks.UseCase{}
	h := &handler{uc}
	body := `{"creator":"` + string(creator) + `","decimals":0,"supply":1,"name":"Ape #1","symbol":"APE"}`

	uc.On("CreateMint", mock.Anything, token.CreateMintParams{Creator: creator, Supply: 1, Name: "Ape #1", Symbol: "APE"}).
		Return(&token.CreateMintResult{Mint: token.Mint{Address: other, Supply: 1}}, nil).Once()
	c, rec := newContext(e, body, creator)
	req.NoError(h.createMint(c))
	req.Equal(http.StatusCreated, rec.Code)

	c, rec = newContext(e, body, other)
	req.NoError(h.createMint(c))
	req.Equal(http.StatusForbidden, rec.Code)

	c, rec = newContext(e, `{"creator":"`+string(creator)+`","supply":0}`, creator)
	req.NoError(h.createMint(c))
	req.Equal(http.StatusBadRequest, rec.Code)

	uc.AssertExpectations(t)
}
