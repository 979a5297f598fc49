package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/signature"
	"github.com/x-xyz/nftescrow/base/validator"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/listing"
	listingMocks "github.com/x-xyz/nftescrow/domain/listing/mocks"
	authMiddleware "github.com/x-xyz/nftescrow/stores/auth/delivery/http/middleware"
)

type resp struct {
	Data   json.RawMessage `json:"data"`
	Status string          `json:"status"`
	Code   int             `json:"code"`
}

type handlerSuite struct {
	suite.Suite

	e      *echo.Echo
	mockUC *listingMocks.UseCase
	h      *handler
	seller domain.Address
	mint   domain.Address
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.mockUC = &listingMocks.UseCase{}
	s.h = &handler{s.mockUC}

	var err error
	_, s.seller, err = signature.GenerateKey()
	s.Require().NoError(err)
	_, s.mint, err = signature.GenerateKey()
	s.Require().NoError(err)
}

func (s *handlerSuite) call(method, target, body string, signer domain.Address, fn echo.HandlerFunc, params ...string) (int, resp) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	if !signer.IsEmpty() {
		authMiddleware.SetSigner(c, signer)
	}
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}

	s.Require().NoError(fn(c))
	r := resp{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &r))
	return rec.Code, r
}

func (s *handlerSuite) listBody(price string) string {
	return `{"seller":"` + string(s.seller) + `","mint":"` + string(s.mint) + `","price":"` + price + `"}`
}

func (s *handlerSuite) TestList() {
	s.mockUC.On("List", mock.Anything, listing.ListParams{Seller: s.seller, Mint: s.mint, Price: 1_250_000_000}).
		Return(&listing.Result{Listing: listing.Listing{Seller: s.seller, IsActive: true}, TxHash: "tx"}, nil).Once()

	code, r := s.call(http.MethodPost, "/listings", s.listBody("1.25"), s.seller, s.h.list)
	s.Equal(http.StatusCreated, code)
	s.Equal("success", r.Status)
	s.mockUC.AssertExpectations(s.T())
}

func (s *handlerSuite) TestListRejects() {
	code, r := s.call(http.MethodPost, "/listings", s.listBody("0.0000000001"), s.seller, s.h.list)
	s.Equal(http.StatusBadRequest, code)
	s.Equal(int(domain.ErrorCodeInvalidPrice), r.Code)

	code, _ = s.call(http.MethodPost, "/listings", s.listBody("1"), s.mint, s.h.list)
	s.Equal(http.StatusForbidden, code)

	code, _ = s.call(http.MethodPost, "/listings", `{"seller":"nope","mint":"nope","price":"1"}`, s.seller, s.h.list)
	s.Equal(http.StatusBadRequest, code)

	s.mockUC.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestListDuplicate() {
	s.mockUC.On("List", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateListing).Once()

	code, r := s.call(http.MethodPost, "/listings", s.listBody("1"), s.seller, s.h.list)
	s.Equal(http.StatusConflict, code)
	s.Equal("fail", r.Status)
	s.Equal(int(domain.ErrorCodeDuplicateListing), r.Code)
}

func (s *handlerSuite) TestBuyInsufficientFunds() {
	buyer := s.mint
	s.mockUC.On("Buy", mock.Anything, listing.BuyParams{Buyer: buyer, Listing: s.seller}).Return(nil, domain.ErrInsufficientFunds).Once()

	code, r := s.call(http.MethodPost, "/", `{"buyer":"`+string(buyer)+`"}`, buyer, s.h.buy, "address", string(s.seller))
	s.Equal(http.StatusPaymentRequired, code)
	s.Equal(int(domain.ErrorCodeInsufficientFunds), r.Code)
}

func (s *handlerSuite) TestCancelUnauthorized() {
	s.mockUC.On("Cancel", mock.Anything, mock.Anything).Return(nil, domain.ErrUnauthorizedCancel).Once()

	code, r := s.call(http.MethodPost, "/", `{"seller":"`+string(s.mint)+`"}`, s.mint, s.h.cancel, "address", string(s.seller))
	s.Equal(http.StatusForbidden, code)
	s.Equal(int(domain.ErrorCodeUnauthorizedCancel), r.Code)
}

func (s *handlerSuite) TestBrowse() {
	s.mockUC.On("Browse", mock.Anything, mock.Anything, mock.Anything).Return(&listing.BrowseResult{Items: []listing.Listing{}, Count: 0}, nil).Once()

	code, r := s.call(http.MethodGet, "/listings?seller="+string(s.seller), "", "", s.h.browse)
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"items":[],"count":0}`, string(r.Data))
}

func (s *handlerSuite) TestDeriveInvalid() {
	code, _ := s.call(http.MethodGet, "/listings/derive?seller=x&mint=y", "", "", s.h.derive)
	s.Equal(http.StatusBadRequest, code)
}

func (s *handlerSuite) TestBrowseSortsDescByDefault() {
	sorted := mock.MatchedBy(func(fn listing.FindAllOptionsFunc) bool {
		opts := listing.FindAllOptions{}
		if err := fn(&opts); err != nil || opts.SortBy == nil || opts.SortDir == nil {
			return false
		}
		return *opts.SortBy == "price" && *opts.SortDir == domain.SortDirDesc
	})
	s.mockUC.On("Browse", mock.Anything, mock.Anything, sorted).Return(&listing.BrowseResult{Items: []listing.Listing{}, Count: 0}, nil).Once()

	code, _ := s.call(http.MethodGet, "/listings?sortBy=price", "", "", s.h.browse)
	s.Equal(http.StatusOK, code)
	s.mockUC.AssertExpectations(s.T())
}
