package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
	Code   domain.ErrorCode   `json:"code,omitempty"`
}

var errStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{query.ErrNotFound, http.StatusNotFound},
	{domain.ErrInvalidAsset, http.StatusBadRequest},
	{domain.ErrInvalidPrice, http.StatusBadRequest},
	{domain.ErrInvalidOwner, http.StatusBadRequest},
	{domain.ErrBadParamInput, http.StatusBadRequest},
	{domain.ErrInvalidAddress, http.StatusBadRequest},
	{domain.ErrBalanceOverflow, http.StatusBadRequest},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
	{domain.ErrUnauthorizedCancel, http.StatusForbidden},
	{domain.ErrInvalidSigner, http.StatusForbidden},
	{domain.ErrAirdropDisabled, http.StatusForbidden},
	{domain.ErrInvalidSignature, http.StatusUnauthorized},
	{domain.ErrSignatureExpired, http.StatusUnauthorized},
	{domain.ErrSignatureReplayed, http.StatusUnauthorized},
	{domain.ErrListingNotActive, http.StatusConflict},
	{domain.ErrDuplicateListing, http.StatusConflict},
}

// StatusOf maps err to an http status, falling back to def
func StatusOf(err error, def int) int {
	for _, e := range errStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return def
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		return c.JSON(status, JsonResponse{err.Error(), JsonResponseStatusFail, domain.CodeOf(err)})
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{Data: data, Status: JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{Data: data, Status: JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
