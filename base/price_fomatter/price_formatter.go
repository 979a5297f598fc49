package pricefomatter

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftescrow/domain"
)

// SolDecimals is the number of decimals between SOL and lamports
const SolDecimals = 9

var (
	ErrTooManyDecimals = xerrors.Errorf("too many decimals: %w", domain.ErrBadParamInput)
	ErrOutOfRange      = xerrors.Errorf("amount out of range: %w", domain.ErrBadParamInput)

	maxLamports = decimal.NewFromInt(math.MaxInt64)
)

// ParseSol converts a SOL display amount like "1.5" into lamports
func ParseSol(display string) (domain.Lamports, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return 0, xerrors.Errorf("%s: %w", err, domain.ErrBadParamInput)
	}
	return FromSol(d)
}

func FromSol(d decimal.Decimal) (domain.Lamports, error) {
	lamports := d.Shift(SolDecimals)
	if !lamports.Equal(lamports.Truncate(0)) {
		return 0, ErrTooManyDecimals
	}
	if lamports.IsNegative() || lamports.GreaterThan(maxLamports) {
		return 0, ErrOutOfRange
	}
	return domain.Lamports(lamports.IntPart()), nil
}

// ToSol returns the display amount of lamports
func ToSol(l domain.Lamports) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(l)), -SolDecimals)
}

// FormatSol renders lamports as a SOL string without trailing zeros
func FormatSol(l domain.Lamports) string {
	return ToSol(l).String()
}
