package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/domain"
	domainMocks "github.com/x-xyz/nftescrow/domain/mocks"
)

func serve(t *testing.T, auth domain.AuthUsecase, headers map[string]string, body string) (*httptest.ResponseRecorder, echo.Context, string) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/listings", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())

	seen := ""
	h := New(auth).Signed()(func(c echo.Context) error {
		b, err := io.ReadAll(c.Request().Body)
		require.NoError(t, err)
		seen = string(b)
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, h(c))
	return rec, c, seen
}

func TestSigned(t *testing.T) {
	auth := &domainMocks.AuthUsecase{}
	auth.On("Verify", mock.Anything, domain.SignedRequest{
		Signer:    "signer",
		Timestamp: 1700000000,
		Signature: "sig",
		Method:    http.MethodPost,
		Path:      "/listings",
		Body:      []byte(`{"price":"1"}`),
	}).Return(domain.Address("signer"), nil).Once()

	rec, c, seen := serve(t, auth, map[string]string{
		HeaderSigner:    "signer",
		HeaderTimestamp: "1700000000",
		HeaderSignature: "sig",
	}, `{"price":"1"}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, `{"price":"1"}`, seen)
	require.NoError(t, RequireSigner(c, "signer"))
	require.ErrorIs(t, RequireSigner(c, "someone-else"), domain.ErrInvalidSigner)
	auth.AssertExpectations(t)
}

func TestSignedRejects(t *testing.T) {
	auth := &domainMocks.AuthUsecase{}
	auth.On("Verify", mock.Anything, mock.Anything).Return(domain.Address(""), domain.ErrSignatureReplayed).Once()

	rec, _, _ := serve(t, auth, map[string]string{
		HeaderSigner:    "signer",
		HeaderTimestamp: "1700000000",
		HeaderSignature: "sig",
	}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), domain.ErrSignatureReplayed.Error())

	rec, _, _ = serve(t, auth, map[string]string{HeaderSigner: "signer", HeaderSignature: "sig"}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _, _ = serve(t, auth, map[string]string{HeaderSigner: "signer", HeaderTimestamp: "1700000000"}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	auth.AssertExpectations(t)
}
