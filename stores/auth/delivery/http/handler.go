package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftescrow/base/delivery"
)

const signingMsgTemplate = "{METHOD}\n{PATH}\n{TIMESTAMP}\n{BODY}"

type authHandler struct {
	window time.Duration
}

func New(e *echo.Echo, window time.Duration) {
	handler := &authHandler{
		window: window,
	}
	g := e.Group("/auth")
	g.GET("/signingMsgTemplate", handler.getSigningMsgTemplate)
}

type signingMsgTemplateResp struct {
	Template      string `json:"template"`
	ServerTime    int64  `json:"serverTime"`
	WindowSeconds int64  `json:"windowSeconds"`
}

// getSigningMsgTemplate
//
//	@Summary		Get signing message template
//	@Description	Message format signed with the wallet key, sent in the X-Signer, X-Timestamp and X-Signature headers
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	object{data=http.signingMsgTemplateResp}
//	@Router			/auth/signingMsgTemplate [get]
func (h *authHandler) getSigningMsgTemplate(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, signingMsgTemplateResp{
		Template:      signingMsgTemplate,
		ServerTime:    time.Now().Unix(),
		WindowSeconds: int64(h.window / time.Second),
	})
}
