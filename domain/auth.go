package domain

import (
	"github.com/x-xyz/nftescrow/base/ctx"
)

// SignedRequest is an instruction signed by the wallet of Signer
type SignedRequest struct {
	Signer    Address
	Timestamp int64
	Signature string
	Method    string
	Path      string
	Body      []byte
}

type AuthUsecase interface {
	// Verify checks the signature and the timestamp window of req, and
	// consumes the signature so it is accepted once
	Verify(ctx ctx.Ctx, req SignedRequest) (Address, error)
}
