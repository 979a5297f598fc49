package signature

import (
	"crypto/ed25519"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftescrow/domain"
)

// InstructionMessage builds the bytes a client signs for one request
func InstructionMessage(method, path string, timestamp int64, body []byte) []byte {
	var b strings.Builder
	b.WriteString(strings.ToUpper(method))
	b.WriteByte('\n')
	b.WriteString(path)
	b.WriteByte('\n')
	b.WriteString(strconv.FormatInt(timestamp, 10))
	b.WriteByte('\n')
	b.Write(body)
	return []byte(b.String())
}

// ValidateMsgSignature checks a base58 ed25519 signature of message by signer
func ValidateMsgSignature(message []byte, signature string, signer domain.Address) (bool, error) {
	pub, err := signer.Bytes()
	if err != nil {
		return false, err
	}
	sig, err := base58.Decode(signature)
	if err != nil {
		return false, xerrors.Errorf("not base58: %w", domain.ErrInvalidSignature)
	}
	if len(sig) != ed25519.SignatureSize {
		return false, xerrors.Errorf("signature must be %d bytes long: %w", ed25519.SignatureSize, domain.ErrInvalidSignature)
	}
	return ed25519.Verify(ed25519.PublicKey(pub), message, sig), nil
}

// Sign returns the base58 signature of message
func Sign(key ed25519.PrivateKey, message []byte) string {
	return base58.Encode(ed25519.Sign(key, message))
}

// GenerateKey returns a fresh keypair and its address
func GenerateKey() (ed25519.PrivateKey, domain.Address, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, "", err
	}
	return priv, domain.AddressFromBytes(pub), nil
}
