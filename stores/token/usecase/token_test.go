package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/pda"
	"github.com/x-xyz/nftescrow/base/signature"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/token"
	tokenMocks "github.com/x-xyz/nftescrow/domain/token/mocks"
	queryMocks "github.com/x-xyz/nftescrow/service/query/mocks"
)

const programId = domain.Address("67AAvxuwtST6foKb3141DAy4eUGnUFVZYERKEBytu5sc")

type tokenSuite struct {
	suite.Suite

	mintRepo    *tokenMocks.MintRepo
	accountRepo *tokenMocks.TokenAccountRepo
	tx          *queryMocks.Transactor
	uc          token.UseCase
	creator     domain.Address
}

func TestTokenSuite(t *testing.T) {
	suite.Run(t, new(tokenSuite))
}

func (s *tokenSuite) SetupTest() {
	s.mintRepo = &tokenMocks.MintRepo{}
	s.accountRepo = &tokenMocks.TokenAccountRepo{}
	s.tx = &queryMocks.Transactor{}
	s.tx.On("RunWithTransaction", mock.Anything, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})
	s.uc = New(&TokenUseCaseCfg{
		MintRepo:    s.mintRepo,
		AccountRepo: s.accountRepo,
		Transactor:  s.tx,
		Deriver:     pda.MustNewDeriver(programId),
	})
	_, creator, err := signature.GenerateKey()
	s.Require().NoError(err)
	s.creator = creator
}

func (s *tokenSuite) TestCreateMint() {
	s.mintRepo.On("Create", mock.Anything, mock.AnythingOfType("*token.Mint")).Return(nil).Once()
	s.accountRepo.On("Create", mock.Anything, mock.AnythingOfType("*token.TokenAccount")).Return(nil).Once()

	res, err := s.uc.CreateMint(ctx.Background(), token.CreateMintParams{
		Creator: s.creator,
		Supply:  1,
		Name:    "Degen #1",
	})
	s.Require().NoError(err)
	s.True(res.Mint.IsNFT())
	s.Equal(s.creator, res.Mint.MintAuthority)
	s.Equal(res.Mint.Address, res.Account.Mint)
	s.Equal(s.creator, res.Account.Owner)
	s.Equal(s.creator, res.Account.Authority)
	s.EqualValues(1, res.Account.Amount)

	holder, err := pda.MustNewDeriver(programId).TokenAccount(s.creator, res.Mint.Address)
	s.Require().NoError(err)
	s.Equal(holder.Address, res.Account.Address)
	s.mintRepo.AssertExpectations(s.T())
	s.accountRepo.AssertExpectations(s.T())
}

func (s *tokenSuite) TestCreateMintRejectsBadParams() {
	_, err := s.uc.CreateMint(ctx.Background(), token.CreateMintParams{Creator: "nope", Supply: 1})
	s.ErrorIs(err, domain.ErrInvalidAddress)

	_, err = s.uc.CreateMint(ctx.Background(), token.CreateMintParams{Creator: s.creator})
	s.ErrorIs(err, domain.ErrBadParamInput)
	s.mintRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *tokenSuite) TestCreateMintAbortsWhenAccountFails() {
	s.mintRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	s.accountRepo.On("Create", mock.Anything, mock.Anything).Return(token.ErrAccountExists).Once()

	_, err := s.uc.CreateMint(ctx.Background(), token.CreateMintParams{Creator: s.creator, Supply: 1})
	s.ErrorIs(err, token.ErrAccountExists)
}

func (s *tokenSuite) TestGetHoldings() {
	mint := domain.Address("mint")
	orphan := domain.Address("orphan")
	s.accountRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]token.TokenAccount{
		{Address: "a", Mint: mint, Owner: s.creator, Amount: 1},
		{Address: "b", Mint: orphan, Owner: s.creator, Amount: 3},
	}, nil).Once()
	s.mintRepo.On("FindOne", mock.Anything, mint).Return(&token.Mint{Address: mint}, nil).Once()
	s.mintRepo.On("FindOne", mock.Anything, orphan).Return(nil, domain.ErrNotFound).Once()

	res, err := s.uc.GetHoldings(ctx.Background(), s.creator)
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(mint, res[0].Mint.Address)
	s.Nil(res[1].Mint)
}
