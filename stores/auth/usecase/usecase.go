package usecase

import (
	"errors"
	"math"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/log"
	"github.com/x-xyz/nftescrow/base/signature"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/keys"
	"github.com/x-xyz/nftescrow/service/redis"
)

var timeNow = time.Now

type impl struct {
	window time.Duration
	redis  redis.Service
}

// New verifies signatures issued at most window away from server time
func New(window time.Duration, redis redis.Service) domain.AuthUsecase {
	return &impl{
		window: window,
		redis:  redis,
	}
}

func (im *impl) Verify(ctx ctx.Ctx, req domain.SignedRequest) (domain.Address, error) {
	if !req.Signer.IsValid() {
		return "", domain.ErrInvalidSigner
	}

	skew := timeNow().Sub(time.Unix(req.Timestamp, 0))
	if math.Abs(float64(skew)) > float64(im.window) {
		return "", xerrors.Errorf("skew %s: %w", skew, domain.ErrSignatureExpired)
	}

	msg := signature.InstructionMessage(req.Method, req.Path, req.Timestamp, req.Body)
	if ok, err := signature.ValidateMsgSignature(msg, req.Signature, req.Signer); err != nil {
		return "", err
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	// a signature outlives its window on both sides of server time
	key := keys.RedisKey(keys.PfxSignature, req.Signature)
	if err := im.redis.SetNX(ctx, key, []byte(req.Signer), 2*im.window); errors.Is(err, redis.ErrKeyExists) {
		ctx.WithField("signer", req.Signer).Warn("signature replayed")
		return "", domain.ErrSignatureReplayed
	} else if err != nil {
		ctx.WithFields(log.Fields{"err": err, "signer": req.Signer}).Error("redis.SetNX failed")
		return "", err
	}

	return req.Signer, nil
}
