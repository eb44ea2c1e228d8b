package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
	"github.com/bidhaus/goapi/domain/payment"
	mPayment "github.com/bidhaus/goapi/domain/payment/mocks"
	"github.com/bidhaus/goapi/domain/token"
	mToken "github.com/bidhaus/goapi/domain/token/mocks"
	mQuery "github.com/bidhaus/goapi/service/query/mocks"
)

var mockCtx = ctx.Background()

type tokenSuite struct {
	suite.Suite

	q         *mQuery.Mongo
	tokenRepo *mToken.Repo
	ledger    *mPayment.UseCase
	im        *impl
}

func (s *tokenSuite) SetupTest() {
	s.q = &mQuery.Mongo{}
	s.tokenRepo = &mToken.Repo{}
	s.ledger = &mPayment.UseCase{}
	s.im = New(&TokenUseCaseCfg{
		Q:         s.q,
		TokenRepo: s.tokenRepo,
		Ledger:    s.ledger,
		Fees:      auction.FeeSchedule{Mint: 10, CreateAuction: 20, Enroll: 3},
		Treasury:  "treasury.bidhaus",
	}).(*impl)
}

func (s *tokenSuite) TearDownTest() {
	s.q.AssertExpectations(s.T())
	s.tokenRepo.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
}

func TestTokenSuite(t *testing.T) {
	suite.Run(t, new(tokenSuite))
}

func (s *tokenSuite) expectTransaction() {
	s.q.On("RunWithTransaction", mockCtx, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	}).Once()
}

func (s *tokenSuite) TestMint() {
	s.expectTransaction()
	s.tokenRepo.On("Insert", mockCtx, mock.MatchedBy(func(t *token.Token) bool {
		return t.TokenId == "token-1" && t.Owner == "alice.test"
	})).Return(nil).Once()
	s.ledger.On("Move", mockCtx, payment.Transfer{
		From:   "alice.test",
		To:     "treasury.bidhaus",
		Amount: 10,
		Kind:   payment.EntryKindFee,
	}).Return(nil).Once()

	res, err := s.im.Mint(mockCtx, "alice.test", 10, "token-1", &token.Metadata{Title: "one"})
	s.Nil(err)
	s.Equal(domain.Account("alice.test"), res.Owner)
	s.Equal(domain.TokenId("token-1"), res.TokenId)
}

func (s *tokenSuite) TestMintWrongFee() {
	_, err := s.im.Mint(mockCtx, "alice.test", 9, "token-1", nil)
	s.Equal(domain.ErrWrongFee, err)
}

func (s *tokenSuite) TestMintDuplicateTokenId() {
	s.expectTransaction()
	s.tokenRepo.On("Insert", mockCtx, mock.Anything).Return(domain.ErrConflict).Once()

	_, err := s.im.Mint(mockCtx, "alice.test", 10, "token-1", nil)
	s.Equal(domain.ErrConflict, err)
}

func (s *tokenSuite) TestTransfer() {
	s.tokenRepo.On("FindOne", mockCtx, domain.TokenId("token-1")).Return(&token.Token{
		TokenId: "token-1",
		Owner:   "alice.test",
	}, nil).Once()
	s.tokenRepo.On("Patch", mockCtx, domain.TokenId("token-1"), mock.MatchedBy(func(p token.Patchable) bool {
		return p.Owner != nil && *p.Owner == "bob.test"
	})).Return(nil).Once()

	s.Nil(s.im.Transfer(mockCtx, "token-1", "alice.test", "bob.test"))
}

func (s *tokenSuite) TestTransferNotOwner() {
	s.tokenRepo.On("FindOne", mockCtx, domain.TokenId("token-1")).Return(&token.Token{
		TokenId: "token-1",
		Owner:   "alice.test",
	}, nil).Once()

	s.Equal(domain.ErrUnauthorized, s.im.Transfer(mockCtx, "token-1", "carol.test", "bob.test"))
}

func (s *tokenSuite) TestTransferUnguardedSkipsOwnerCheck() {
	s.tokenRepo.On("Patch", mockCtx, domain.TokenId("token-1"), mock.MatchedBy(func(p token.Patchable) bool {
		return p.Owner != nil && *p.Owner == "bob.test"
	})).Return(nil).Once()

	s.Nil(s.im.TransferUnguarded(mockCtx, "token-1", "auction.bidhaus", "bob.test"))
}

func (s *tokenSuite) TestOwnerOf() {
	s.tokenRepo.On("FindOne", mockCtx, domain.TokenId("token-1")).Return(&token.Token{
		TokenId: "token-1",
		Owner:   "alice.test",
	}, nil).Once()

	owner, err := s.im.OwnerOf(mockCtx, "token-1")
	s.Nil(err)
	s.Equal(domain.Account("alice.test"), owner)
}

func (s *tokenSuite) TestOwnerOfUnknownToken() {
	s.tokenRepo.On("FindOne", mockCtx, domain.TokenId("token-404")).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.OwnerOf(mockCtx, "token-404")
	s.Equal(domain.ErrNotFound, err)
}
