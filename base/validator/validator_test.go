package validator

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftescrow/domain"
)

type ValidatorTestSuite struct {
	suite.Suite
	valid string
}

func (s *ValidatorTestSuite) SetupSuite() {
	pub, _, err := ed25519.GenerateKey(nil)
	s.Require().NoError(err)
	s.valid = base58.Encode(pub)
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address - too short",
			address:    "abc",
			expIsValid: false,
		},
		{
			desc:       "invalid address - not base58",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: false,
		},
		{
			desc:       "valid address - system program",
			address:    "11111111111111111111111111111111",
			expIsValid: true,
		},
		{
			desc:       "valid address - random key",
			address:    s.valid,
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestAddressTag() {
	type req struct {
		Seller domain.Address `validate:"required,address"`
	}
	v := NewCustomValidator(New())
	s.NoError(v.Validate(&req{Seller: domain.Address(s.valid)}))
	s.Error(v.Validate(&req{Seller: "abc"}))
	s.Error(v.Validate(&req{}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
