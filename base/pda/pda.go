package pda

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftescrow/domain"
)

const (
	MaxSeeds      = 16
	MaxSeedLength = 32

	pdaMarker = "ProgramDerivedAddress"
)

var (
	ErrMaxSeedLengthExceeded = xerrors.New("max seed length exceeded")
	ErrTooManySeeds          = xerrors.New("too many seeds")
	ErrInvalidSeeds          = xerrors.New("provided seeds do not result in a valid address")
	ErrNoViableBump          = xerrors.New("unable to find a viable program address bump seed")
)

// Seed prefixes
var (
	SeedListing = []byte("listing")
	SeedEscrow  = []byte("escrow")
	SeedMint    = []byte("mint")
)

// Deriver derives program addresses for one program id
type Deriver struct {
	programId []byte
}

// Derived is a program address together with the bump that produced it
type Derived struct {
	Address domain.Address `json:"address"`
	Bump    uint8          `json:"bump"`
}

func NewDeriver(programId domain.Address) (*Deriver, error) {
	b, err := programId.Bytes()
	if err != nil {
		return nil, err
	}
	return &Deriver{programId: b}, nil
}

func MustNewDeriver(programId domain.Address) *Deriver {
	d, err := NewDeriver(programId)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Deriver) ProgramId() domain.Address {
	return domain.AddressFromBytes(d.programId)
}

// CreateProgramAddress hashes the seeds with the program id and fails when
// the result lies on the ed25519 curve.
func (d *Deriver) CreateProgramAddress(seeds ...[]byte) ([]byte, error) {
	if len(seeds) > MaxSeeds {
		return nil, ErrTooManySeeds
	}
	h := sha256.New()
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return nil, ErrMaxSeedLengthExceeded
		}
		h.Write(s)
	}
	h.Write(d.programId)
	h.Write([]byte(pdaMarker))
	sum := h.Sum(nil)
	if IsOnCurve(sum) {
		return nil, ErrInvalidSeeds
	}
	return sum, nil
}

// FindProgramAddress searches bumps from 255 down to 0 and returns the first
// off-curve address.
func (d *Deriver) FindProgramAddress(seeds ...[]byte) (Derived, error) {
	// one slot for the bump
	if len(seeds) > MaxSeeds-1 {
		return Derived{}, ErrTooManySeeds
	}
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{byte(bump)}
		addr, err := d.CreateProgramAddress(withBump...)
		if err == ErrInvalidSeeds {
			continue
		} else if err != nil {
			return Derived{}, err
		}
		return Derived{Address: domain.AddressFromBytes(addr), Bump: uint8(bump)}, nil
	}
	return Derived{}, ErrNoViableBump
}

func (d *Deriver) find(seeds ...interface{}) (Derived, error) {
	raw := make([][]byte, 0, len(seeds))
	for _, s := range seeds {
		switch v := s.(type) {
		case []byte:
			raw = append(raw, v)
		case domain.Address:
			b, err := v.Bytes()
			if err != nil {
				return Derived{}, err
			}
			raw = append(raw, b)
		default:
			return Derived{}, xerrors.Errorf("unsupported seed type %T", s)
		}
	}
	return d.FindProgramAddress(raw...)
}

// Listing derives ["listing", seller, mint]
func (d *Deriver) Listing(seller, mint domain.Address) (Derived, error) {
	return d.find(SeedListing, seller, mint)
}

// Escrow derives ["escrow", listing]
func (d *Deriver) Escrow(listing domain.Address) (Derived, error) {
	return d.find(SeedEscrow, listing)
}

// TokenAccount derives the holder account of owner for mint
func (d *Deriver) TokenAccount(owner, mint domain.Address) (Derived, error) {
	return d.find(owner, mint)
}

// Mint derives ["mint", creator, nonce]
func (d *Deriver) Mint(creator domain.Address, nonce []byte) (Derived, error) {
	return d.find(SeedMint, creator, nonce)
}

// IsOnCurve reports whether b is a valid compressed ed25519 point
func IsOnCurve(b []byte) bool {
	if len(b) != domain.PubkeyLength {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
