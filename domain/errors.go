package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// protocol errors, see ErrorCode
	ErrInvalidAsset       = errors.New("Invalid NFT: must have balance 1 and 0 decimals")
	ErrListingNotActive   = errors.New("Listing is not active")
	ErrUnauthorizedCancel = errors.New("Only the seller can cancel the listing")
	ErrInsufficientFunds  = errors.New("Insufficient funds")
	ErrDuplicateListing   = errors.New("Listing already exists")
	ErrInvalidOwner       = errors.New("Token account is not owned by the seller")
	ErrInvalidPrice       = errors.New("Price must be greater than zero")

	ErrAirdropDisabled = errors.New("airdrop disabled")
	ErrBalanceOverflow = errors.New("balance overflow")

	// request error
	ErrInvalidAddress    = errors.New("Invalid address")
	ErrInvalidSignature  = errors.New("Invalid signature")
	ErrSignatureExpired  = errors.New("Signature expired")
	ErrSignatureReplayed = errors.New("Signature already used")
	ErrInvalidSigner     = errors.New("Signer does not match the instruction")
)

// ErrorCode is the numeric code clients match protocol failures on.
type ErrorCode int

const (
	ErrorCodeNone ErrorCode = 0

	ErrorCodeInvalidAsset ErrorCode = 6000 + iota - 1
	ErrorCodeListingNotActive
	ErrorCodeUnauthorizedCancel
	ErrorCodeInsufficientFunds
	ErrorCodeDuplicateListing
	ErrorCodeInvalidOwner
	ErrorCodeInvalidPrice
)

var errorCodes = []struct {
	err  error
	code ErrorCode
}{
	{ErrInvalidAsset, ErrorCodeInvalidAsset},
	{ErrListingNotActive, ErrorCodeListingNotActive},
	{ErrUnauthorizedCancel, ErrorCodeUnauthorizedCancel},
	{ErrInsufficientFunds, ErrorCodeInsufficientFunds},
	{ErrDuplicateListing, ErrorCodeDuplicateListing},
	{ErrInvalidOwner, ErrorCodeInvalidOwner},
	{ErrInvalidPrice, ErrorCodeInvalidPrice},
}

// CodeOf returns the protocol code wrapped in err, or ErrorCodeNone.
func CodeOf(err error) ErrorCode {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return ErrorCodeNone
}
