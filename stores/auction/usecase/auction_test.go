package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
	mAuction "github.com/bidhaus/goapi/domain/auction/mocks"
	"github.com/bidhaus/goapi/domain/payment"
	mPayment "github.com/bidhaus/goapi/domain/payment/mocks"
	mToken "github.com/bidhaus/goapi/domain/token/mocks"
	mQuery "github.com/bidhaus/goapi/service/query/mocks"
)

var mockCtx = ctx.Background()

type auctionSuite struct {
	suite.Suite

	q           *mQuery.Mongo
	auctionRepo *mAuction.Repo
	tokenUC     *mToken.UseCase
	ledger      *mPayment.UseCase
	im          *impl

	now time.Time
}

func (s *auctionSuite) SetupTest() {
	s.q = &mQuery.Mongo{}
	s.auctionRepo = &mAuction.Repo{}
	s.tokenUC = &mToken.UseCase{}
	s.ledger = &mPayment.UseCase{}
	s.im = New(&AuctionUseCaseCfg{
		Q:           s.q,
		AuctionRepo: s.auctionRepo,
		TokenUC:     s.tokenUC,
		Ledger:      s.ledger,
		Fees:        auction.FeeSchedule{Mint: 10, CreateAuction: 20, Enroll: 3},
		Contract:    "auction.bidhaus",
		Treasury:    "treasury.bidhaus",
	}).(*impl)

	s.now = time.Unix(1700000000, 0)
	timeNow = func() time.Time { return s.now }
}

func (s *auctionSuite) TearDownTest() {
	timeNow = time.Now
	s.q.AssertExpectations(s.T())
	s.auctionRepo.AssertExpectations(s.T())
	s.tokenUC.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
}

func TestAuctionSuite(t *testing.T) {
	suite.Run(t, new(auctionSuite))
}

func (s *auctionSuite) expectTransaction() {
	s.q.On("RunWithTransaction", mockCtx, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	}).Once()
}

// openAuction is an auction in its bidding window with no bid yet
func (s *auctionSuite) openAuction() *auction.Auction {
	return &auction.Auction{
		AuctionId:    1,
		Owner:        "alice.test",
		TokenId:      "token-1",
		StartPrice:   100,
		StartTime:    domain.ToUnixNano(s.now.Add(-time.Hour)),
		EndTime:      domain.ToUnixNano(s.now.Add(time.Hour)),
		CurrentPrice: 100,
	}
}

// endedAuction has a closed bidding window, optionally with a winning bid
func (s *auctionSuite) endedAuction(winner domain.Account, price domain.Amount) *auction.Auction {
	a := s.openAuction()
	a.StartTime = domain.ToUnixNano(s.now.Add(-2 * time.Hour))
	a.EndTime = domain.ToUnixNano(s.now.Add(-time.Hour))
	if !winner.IsEmpty() {
		a.Winner = &winner
		a.CurrentPrice = price
	}
	return a
}

func (s *auctionSuite) TestCreate() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("MarkEscrowed", mockCtx, domain.TokenId("token-1")).Return(nil).Once()
	s.auctionRepo.On("NextId", mockCtx).Return(id, nil).Once()
	s.ledger.On("Move", mockCtx, payment.Transfer{
		From:      "alice.test",
		To:        "treasury.bidhaus",
		Amount:    20,
		Kind:      payment.EntryKindFee,
		AuctionId: &id,
	}).Return(nil).Once()
	s.tokenUC.On("Transfer", mockCtx, domain.TokenId("token-1"), domain.Account("alice.test"), domain.Account("auction.bidhaus")).Return(nil).Once()
	s.auctionRepo.On("Insert", mockCtx, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.AuctionId == id &&
			a.Owner == "alice.test" &&
			a.TokenId == "token-1" &&
			a.StartPrice == 100 &&
			a.CurrentPrice == 100 &&
			a.StartTime == domain.ToUnixNano(s.now) &&
			a.EndTime == domain.ToUnixNano(s.now.Add(24*time.Hour)) &&
			!a.HasWinner()
	})).Return(nil).Once()

	res, err := s.im.Create(mockCtx, "alice.test", 20, "token-1", 100, 24*time.Hour)
	s.Nil(err)
	s.Equal(auction.StateOpen, res.StateAt(s.now))
}

func (s *auctionSuite) TestCreateWrongFee() {
	_, err := s.im.Create(mockCtx, "alice.test", 19, "token-1", 100, time.Hour)
	s.Equal(domain.ErrWrongFee, err)
}

func (s *auctionSuite) TestCreateBadParams() {
	_, err := s.im.Create(mockCtx, "a", 20, "token-1", 100, time.Hour)
	s.Equal(domain.ErrInvalidAccount, err)

	_, err = s.im.Create(mockCtx, "alice.test", 20, "", 100, time.Hour)
	s.Equal(domain.ErrBadParamInput, err)

	_, err = s.im.Create(mockCtx, "alice.test", 20, "token-1", 100, 0)
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *auctionSuite) TestCreateTokenAlreadyUnderAuction() {
	s.expectTransaction()
	s.auctionRepo.On("MarkEscrowed", mockCtx, domain.TokenId("token-1")).Return(domain.ErrTokenEscrowed).Once()

	_, err := s.im.Create(mockCtx, "alice.test", 20, "token-1", 100, time.Hour)
	s.Equal(domain.ErrTokenEscrowed, err)
}

func (s *auctionSuite) TestCreateNotTokenOwner() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("MarkEscrowed", mockCtx, domain.TokenId("token-1")).Return(nil).Once()
	s.auctionRepo.On("NextId", mockCtx).Return(id, nil).Once()
	s.ledger.On("Move", mockCtx, mock.Anything).Return(nil).Once()
	s.tokenUC.On("Transfer", mockCtx, domain.TokenId("token-1"), domain.Account("bob.test"), domain.Account("auction.bidhaus")).Return(domain.ErrUnauthorized).Once()

	_, err := s.im.Create(mockCtx, "bob.test", 20, "token-1", 100, time.Hour)
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *auctionSuite) TestBidFirstBid() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(s.openAuction(), nil).Once()
	s.ledger.On("Move", mockCtx, payment.Transfer{
		From:      "bob.test",
		To:        "auction.bidhaus",
		Amount:    150,
		Kind:      payment.EntryKindBid,
		AuctionId: &id,
	}).Return(nil).Once()
	s.auctionRepo.On("Patch", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.CurrentPrice != nil && *p.CurrentPrice == 150 &&
			p.Winner != nil && *p.Winner == "bob.test"
	})).Return(nil).Once()

	s.Nil(s.im.Bid(mockCtx, "bob.test", 150, id))
}

func (s *auctionSuite) TestBidRefundsDisplacedBidder() {
	id := domain.AuctionId(1)
	prev := domain.Account("bob.test")

	a := s.openAuction()
	a.Winner = &prev
	a.CurrentPrice = 200

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.ledger.On("Move", mockCtx, payment.Transfer{
		From:      "carol.test",
		To:        "auction.bidhaus",
		Amount:    250,
		Kind:      payment.EntryKindBid,
		AuctionId: &id,
	}).Return(nil).Once()
	s.ledger.On("Move", mockCtx, payment.Transfer{
		From:      "auction.bidhaus",
		To:        "bob.test",
		Amount:    197,
		Kind:      payment.EntryKindRefund,
		AuctionId: &id,
	}).Return(nil).Once()
	s.auctionRepo.On("Patch", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.CurrentPrice != nil && *p.CurrentPrice == 250 &&
			p.Winner != nil && *p.Winner == "carol.test"
	})).Return(nil).Once()

	s.Nil(s.im.Bid(mockCtx, "carol.test", 250, id))
}

func (s *auctionSuite) TestBidTooLow() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(s.openAuction(), nil).Once()

	// matching the current price is not enough
	s.Equal(domain.ErrBidTooLow, s.im.Bid(mockCtx, "bob.test", 100, id))
}

func (s *auctionSuite) TestBidBeforeStart() {
	id := domain.AuctionId(1)
	a := s.openAuction()
	a.StartTime = domain.ToUnixNano(s.now.Add(time.Minute))

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()

	s.Equal(domain.ErrAuctionNotStarted, s.im.Bid(mockCtx, "bob.test", 150, id))
}

func (s *auctionSuite) TestBidAtStartInstant() {
	id := domain.AuctionId(1)
	a := s.openAuction()
	a.StartTime = domain.ToUnixNano(s.now)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.ledger.On("Move", mockCtx, payment.Transfer{
		From:      "bob.test",
		To:        "auction.bidhaus",
		Amount:    150,
		Kind:      payment.EntryKindBid,
		AuctionId: &id,
	}).Return(nil).Once()
	s.auctionRepo.On("Patch", mockCtx, id, mock.Anything).Return(nil).Once()

	// the window opens exactly at the start instant
	s.Nil(s.im.Bid(mockCtx, "bob.test", 150, id))
}

func (s *auctionSuite) TestBidAfterEnd() {
	id := domain.AuctionId(1)
	a := s.openAuction()
	a.EndTime = domain.ToUnixNano(s.now)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()

	// the end instant itself is already closed
	s.Equal(domain.ErrAuctionEnded, s.im.Bid(mockCtx, "bob.test", 150, id))
}

func (s *auctionSuite) TestBidUnknownAuction() {
	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, domain.AuctionId(42)).Return(nil, domain.ErrNotFound).Once()

	s.Equal(domain.ErrNotFound, s.im.Bid(mockCtx, "bob.test", 150, 42))
}

func (s *auctionSuite) TestClaimAsset() {
	id := domain.AuctionId(1)
	a := s.endedAuction("bob.test", 250)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.tokenUC.On("TransferUnguarded", mockCtx, domain.TokenId("token-1"), domain.Account("auction.bidhaus"), domain.Account("bob.test")).Return(nil).Once()
	s.auctionRepo.On("Patch", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.NftClaimed != nil && *p.NftClaimed
	})).Return(nil).Once()
	s.auctionRepo.On("UnmarkEscrowed", mockCtx, domain.TokenId("token-1")).Return(nil).Once()

	s.Nil(s.im.ClaimAsset(mockCtx, "bob.test", id))
}

func (s *auctionSuite) TestClaimAssetNotWinner() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(s.endedAuction("bob.test", 250), nil).Once()

	s.Equal(domain.ErrUnauthorized, s.im.ClaimAsset(mockCtx, "carol.test", id))
}

func (s *auctionSuite) TestClaimAssetBeforeEnd() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(s.openAuction(), nil).Once()

	s.Equal(domain.ErrAuctionNotEnded, s.im.ClaimAsset(mockCtx, "bob.test", id))
}

func (s *auctionSuite) TestClaimAssetNoBid() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(s.endedAuction("", 0), nil).Once()

	s.Equal(domain.ErrNoBid, s.im.ClaimAsset(mockCtx, "bob.test", id))
}

func (s *auctionSuite) TestClaimAssetTwice() {
	id := domain.AuctionId(1)
	a := s.endedAuction("bob.test", 250)
	a.NftClaimed = true

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()

	s.Equal(domain.ErrAlreadyClaimed, s.im.ClaimAsset(mockCtx, "bob.test", id))
}

func (s *auctionSuite) TestClaimProceeds() {
	id := domain.AuctionId(1)
	a := s.endedAuction("bob.test", 250)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.ledger.On("Move", mockCtx, payment.Transfer{
		From:      "auction.bidhaus",
		To:        "alice.test",
		Amount:    250,
		Kind:      payment.EntryKindProceeds,
		AuctionId: &id,
	}).Return(nil).Once()
	s.auctionRepo.On("Patch", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.ProceedsClaimed != nil && *p.ProceedsClaimed
	})).Return(nil).Once()

	s.Nil(s.im.ClaimProceeds(mockCtx, "alice.test", id))
}

func (s *auctionSuite) TestClaimProceedsNoBid() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(s.endedAuction("", 0), nil).Once()

	s.Equal(domain.ErrNoBid, s.im.ClaimProceeds(mockCtx, "alice.test", id))
}

func (s *auctionSuite) TestClaimProceedsBeforeEnd() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(s.openAuction(), nil).Once()

	s.Equal(domain.ErrAuctionNotEnded, s.im.ClaimProceeds(mockCtx, "alice.test", id))
}

func (s *auctionSuite) TestClaimProceedsNotOwner() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(s.endedAuction("bob.test", 250), nil).Once()

	s.Equal(domain.ErrUnauthorized, s.im.ClaimProceeds(mockCtx, "bob.test", id))
}

func (s *auctionSuite) TestClaimProceedsTwice() {
	id := domain.AuctionId(1)
	a := s.endedAuction("bob.test", 250)
	a.ProceedsClaimed = true

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()

	s.Equal(domain.ErrAlreadyClaimed, s.im.ClaimProceeds(mockCtx, "alice.test", id))
}

func (s *auctionSuite) TestClaimBack() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(s.endedAuction("", 0), nil).Once()
	s.tokenUC.On("TransferUnguarded", mockCtx, domain.TokenId("token-1"), domain.Account("auction.bidhaus"), domain.Account("alice.test")).Return(nil).Once()
	s.auctionRepo.On("Patch", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.NftClaimed != nil && *p.NftClaimed
	})).Return(nil).Once()
	s.auctionRepo.On("UnmarkEscrowed", mockCtx, domain.TokenId("token-1")).Return(nil).Once()

	s.Nil(s.im.ClaimBack(mockCtx, "alice.test", id))
}

func (s *auctionSuite) TestClaimBackBeforeEnd() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(s.openAuction(), nil).Once()

	s.Equal(domain.ErrAuctionNotEnded, s.im.ClaimBack(mockCtx, "alice.test", id))
}

func (s *auctionSuite) TestClaimBackTokenSold() {
	id := domain.AuctionId(1)

	s.expectTransaction()
	s.auctionRepo.On("FindOne", mockCtx, id).Return(s.endedAuction("bob.test", 250), nil).Once()

	s.Equal(domain.ErrTokenSold, s.im.ClaimBack(mockCtx, "alice.test", id))
}

func (s *auctionSuite) TestGet() {
	a := s.openAuction()
	s.auctionRepo.On("FindOne", mockCtx, domain.AuctionId(1)).Return(a, nil).Once()

	res, err := s.im.Get(mockCtx, 1)
	s.Nil(err)
	s.Equal(a, res)
}

func (s *auctionSuite) TestFindAll() {
	s.auctionRepo.On("FindAll", mockCtx).Return([]*auction.Auction{s.openAuction()}, nil).Once()

	res, err := s.im.FindAll(mockCtx)
	s.Nil(err)
	s.Len(res, 1)
}

// stateRepo wires the repo mock to a single mutable record so that a sequence
// of operations observes its own effects
func (s *auctionSuite) stateRepo(record *auction.Auction) {
	id := record.AuctionId
	s.auctionRepo.On("FindOne", mockCtx, id).Return(func(ctx.Ctx, domain.AuctionId) *auction.Auction {
		cp := *record
		return &cp
	}, nil)
	s.auctionRepo.On("Patch", mockCtx, id, mock.Anything).Run(func(args mock.Arguments) {
		p := args.Get(2).(auction.Patchable)
		if p.CurrentPrice != nil {
			record.CurrentPrice = *p.CurrentPrice
		}
		if p.Winner != nil {
			record.Winner = p.Winner
		}
		if p.ProceedsClaimed != nil {
			record.ProceedsClaimed = *p.ProceedsClaimed
		}
		if p.NftClaimed != nil {
			record.NftClaimed = *p.NftClaimed
		}
	}).Return(nil)
}

func (s *auctionSuite) TestLifecycleSold() {
	t0 := s.now
	id := domain.AuctionId(1)
	record := s.openAuction()
	record.StartTime = domain.ToUnixNano(t0)
	record.EndTime = domain.ToUnixNano(t0.Add(3600 * time.Second))

	s.stateRepo(record)
	s.q.On("RunWithTransaction", mockCtx, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})

	moves := []payment.Transfer{}
	s.ledger.On("Move", mockCtx, mock.Anything).Run(func(args mock.Arguments) {
		moves = append(moves, args.Get(1).(payment.Transfer))
	}).Return(nil)
	s.tokenUC.On("TransferUnguarded", mockCtx, domain.TokenId("token-1"), domain.Account("auction.bidhaus"), domain.Account("carol.test")).Return(nil).Once()
	s.auctionRepo.On("UnmarkEscrowed", mockCtx, domain.TokenId("token-1")).Return(nil).Once()

	s.now = t0.Add(10 * time.Second)
	s.Nil(s.im.Bid(mockCtx, "bob.test", 150, id))
	s.Equal(domain.Amount(150), record.CurrentPrice)
	s.Equal(domain.Account("bob.test"), *record.Winner)

	s.now = t0.Add(20 * time.Second)
	s.Equal(domain.ErrBidTooLow, s.im.Bid(mockCtx, "bob.test", 140, id))

	s.now = t0.Add(30 * time.Second)
	s.Nil(s.im.Bid(mockCtx, "carol.test", 200, id))
	s.Equal(domain.Amount(200), record.CurrentPrice)
	s.Equal(domain.Account("carol.test"), *record.Winner)

	// displaced bidder got back the prior price minus the enroll fee
	s.Contains(moves, payment.Transfer{
		From:      "auction.bidhaus",
		To:        "bob.test",
		Amount:    147,
		Kind:      payment.EntryKindRefund,
		AuctionId: &id,
	})

	s.now = t0.Add(3601 * time.Second)
	s.Nil(s.im.ClaimAsset(mockCtx, "carol.test", id))
	s.True(record.NftClaimed)

	s.Nil(s.im.ClaimProceeds(mockCtx, "alice.test", id))
	s.True(record.ProceedsClaimed)
	s.Contains(moves, payment.Transfer{
		From:      "auction.bidhaus",
		To:        "alice.test",
		Amount:    200,
		Kind:      payment.EntryKindProceeds,
		AuctionId: &id,
	})

	s.Equal(domain.ErrTokenSold, s.im.ClaimBack(mockCtx, "alice.test", id))
	s.Equal(auction.StateEndedSettled, record.StateAt(s.now))
}

func (s *auctionSuite) TestLifecycleNoBid() {
	t0 := s.now
	id := domain.AuctionId(1)
	record := s.openAuction()
	record.StartTime = domain.ToUnixNano(t0)
	record.EndTime = domain.ToUnixNano(t0.Add(3600 * time.Second))

	s.stateRepo(record)
	s.q.On("RunWithTransaction", mockCtx, mock.Anything).Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
		return run(c)
	})
	s.tokenUC.On("TransferUnguarded", mockCtx, domain.TokenId("token-1"), domain.Account("auction.bidhaus"), domain.Account("alice.test")).Return(nil).Once()
	s.auctionRepo.On("UnmarkEscrowed", mockCtx, domain.TokenId("token-1")).Return(nil).Once()

	s.now = t0.Add(3601 * time.Second)
	s.Nil(s.im.ClaimBack(mockCtx, "alice.test", id))
	s.True(record.NftClaimed)

	// without a bid there are no proceeds to collect
	s.Equal(domain.ErrNoBid, s.im.ClaimProceeds(mockCtx, "alice.test", id))

	s.Equal(domain.ErrAlreadyClaimed, s.im.ClaimBack(mockCtx, "alice.test", id))
}
