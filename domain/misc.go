package domain

import (
	"github.com/mr-tron/base58"
	"golang.org/x/xerrors"
)

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)

// PubkeyLength is the byte length of an account identity.
const PubkeyLength = 32

// Address is a base58 encoded 32-byte account identity.
type Address string

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a == b
}

func (a Address) String() string {
	return string(a)
}

// Bytes decodes the address into its raw key.
func (a Address) Bytes() ([]byte, error) {
	b, err := base58.Decode(string(a))
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", a, ErrInvalidAddress)
	}
	if len(b) != PubkeyLength {
		return nil, xerrors.Errorf("%s has %d bytes: %w", a, len(b), ErrInvalidAddress)
	}
	return b, nil
}

func (a Address) IsValid() bool {
	_, err := a.Bytes()
	return err == nil
}

func AddressFromBytes(b []byte) Address {
	return Address(base58.Encode(b))
}

// TxHash identifies one committed transition.
type TxHash string

// Lamports is the native balance unit, 1e-9 SOL.
type Lamports uint64
