package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/delivery"
	"github.com/x-xyz/nftescrow/domain"
)

const (
	HeaderSigner    = "X-Signer"
	HeaderTimestamp = "X-Timestamp"
	HeaderSignature = "X-Signature"

	signerKey = "signer"

	maxBodyBytes = 1 << 16
)

type AuthMiddleware struct {
	auth domain.AuthUsecase
}

func New(auth domain.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Signed rejects requests without a valid, unused instruction signature
func (m *AuthMiddleware) Signed() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)
			req := c.Request()

			ts, err := strconv.ParseInt(req.Header.Get(HeaderTimestamp), 10, 64)
			if err != nil {
				return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrSignatureExpired)
			}
			sig := req.Header.Get(HeaderSignature)
			if len(sig) == 0 {
				return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrInvalidSignature)
			}

			body, err := io.ReadAll(io.LimitReader(req.Body, maxBodyBytes))
			if err != nil {
				ctx.WithField("err", err).Error("read body failed")
				return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			signer, err := m.auth.Verify(ctx, domain.SignedRequest{
				Signer:    domain.Address(req.Header.Get(HeaderSigner)),
				Timestamp: ts,
				Signature: sig,
				Method:    req.Method,
				Path:      req.URL.Path,
				Body:      body,
			})
			if err != nil {
				return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
			}

			SetSigner(c, signer)
			return next(c)
		}
	}
}

// SetSigner marks signer as the verified signer of the request
func SetSigner(c echo.Context, signer domain.Address) {
	c.Set(signerKey, signer)
}

// Signer returns the verified signer of the request
func Signer(c echo.Context) (domain.Address, bool) {
	signer, ok := c.Get(signerKey).(domain.Address)
	return signer, ok
}

// RequireSigner fails with domain.ErrInvalidSigner unless actor signed the request
func RequireSigner(c echo.Context, actor domain.Address) error {
	if signer, ok := Signer(c); !ok || !signer.Equals(actor) {
		return domain.ErrInvalidSigner
	}
	return nil
}
