package usecase

import (
	"strconv"
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
	"github.com/bidhaus/goapi/domain/payment"
	"github.com/bidhaus/goapi/domain/token"
	"github.com/bidhaus/goapi/service/cache"
	"github.com/bidhaus/goapi/service/query"
)

var timeNow = time.Now

type AuctionUseCaseCfg struct {
	Q           query.Mongo
	AuctionRepo auction.Repo
	TokenUC     token.UseCase
	Ledger      payment.UseCase
	Cache       cache.Service
	Fees        auction.FeeSchedule

	// Contract holds escrowed tokens and bid deposits, Treasury collects fees
	Contract domain.Account
	Treasury domain.Account
}

type impl struct {
	q        query.Mongo
	auction  auction.Repo
	tokenUC  token.UseCase
	ledger   payment.UseCase
	cache    cache.Service
	fees     auction.FeeSchedule
	contract domain.Account
	treasury domain.Account
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	return &impl{
		q:        cfg.Q,
		auction:  cfg.AuctionRepo,
		tokenUC:  cfg.TokenUC,
		ledger:   cfg.Ledger,
		cache:    cfg.Cache,
		fees:     cfg.Fees,
		contract: cfg.Contract,
		treasury: cfg.Treasury,
	}
}

func cacheKey(id domain.AuctionId) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (im *impl) invalidate(c ctx.Ctx, id domain.AuctionId) {
	if im.cache == nil {
		return
	}
	if err := im.cache.Del(c, cacheKey(id)); err != nil {
		c.WithFields(log.Fields{
			"auctionId": id,
			"err":       err,
		}).Warn("cache.Del failed")
	}
}

func (im *impl) Create(c ctx.Ctx, caller domain.Account, attached domain.Amount, tokenId domain.TokenId, startPrice domain.Amount, duration time.Duration) (*auction.Auction, error) {
	if !caller.IsValid() {
		return nil, domain.ErrInvalidAccount
	}
	if tokenId.IsEmpty() || duration <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if attached != im.fees.CreateAuction {
		return nil, domain.ErrWrongFee
	}

	var res *auction.Auction
	err := im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		// one open auction per token; the escrow set enforces it
		if err := im.auction.MarkEscrowed(c, tokenId); err != nil {
			return err
		}

		id, err := im.auction.NextId(c)
		if err != nil {
			return err
		}

		if err := im.ledger.Move(c, payment.Transfer{
			From:      caller,
			To:        im.treasury,
			Amount:    attached,
			Kind:      payment.EntryKindFee,
			AuctionId: &id,
		}); err != nil {
			return err
		}

		// guarded transfer doubles as the ownership check
		if err := im.tokenUC.Transfer(c, tokenId, caller, im.contract); err != nil {
			return err
		}

		now := timeNow()
		res = &auction.Auction{
			AuctionId:    id,
			Owner:        caller,
			TokenId:      tokenId,
			StartPrice:   startPrice,
			StartTime:    domain.ToUnixNano(now),
			EndTime:      domain.ToUnixNano(now.Add(duration)),
			CurrentPrice: startPrice,
			CreatedAt:    now,
		}
		if err := im.auction.Insert(c, res); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) Bid(c ctx.Ctx, caller domain.Account, attached domain.Amount, id domain.AuctionId) error {
	if !caller.IsValid() {
		return domain.ErrInvalidAccount
	}

	err := im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		a, err := im.auction.FindOne(c, id)
		if err != nil {
			return err
		}

		now := timeNow()
		if now.Before(a.StartTime.Time()) {
			return domain.ErrAuctionNotStarted
		}
		if a.IsEndedAt(now) {
			return domain.ErrAuctionEnded
		}
		if attached <= a.CurrentPrice {
			return domain.ErrBidTooLow
		}

		if err := im.ledger.Move(c, payment.Transfer{
			From:      caller,
			To:        im.contract,
			Amount:    attached,
			Kind:      payment.EntryKindBid,
			AuctionId: &id,
		}); err != nil {
			return err
		}

		// make the displaced bidder whole; the enroll fee stays with the house
		if a.HasWinner() && a.CurrentPrice > im.fees.Enroll {
			if err := im.ledger.Move(c, payment.Transfer{
				From:      im.contract,
				To:        *a.Winner,
				Amount:    a.CurrentPrice - im.fees.Enroll,
				Kind:      payment.EntryKindRefund,
				AuctionId: &id,
			}); err != nil {
				return err
			}
		}

		return im.auction.Patch(c, id, auction.Patchable{
			CurrentPrice: &attached,
			Winner:       &caller,
		})
	})
	if err != nil {
		return err
	}

	im.invalidate(c, id)
	return nil
}

func (im *impl) ClaimAsset(c ctx.Ctx, caller domain.Account, id domain.AuctionId) error {
	err := im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		a, err := im.auction.FindOne(c, id)
		if err != nil {
			return err
		}

		if !a.IsEndedAt(timeNow()) {
			return domain.ErrAuctionNotEnded
		}
		if !a.HasWinner() {
			return domain.ErrNoBid
		}
		if !caller.Equals(*a.Winner) {
			return domain.ErrUnauthorized
		}
		if a.NftClaimed {
			return domain.ErrAlreadyClaimed
		}

		if err := im.tokenUC.TransferUnguarded(c, a.TokenId, im.contract, caller); err != nil {
			return err
		}
		nftClaimed := true
		if err := im.auction.Patch(c, id, auction.Patchable{NftClaimed: &nftClaimed}); err != nil {
			return err
		}
		return im.auction.UnmarkEscrowed(c, a.TokenId)
	})
	if err != nil {
		return err
	}

	im.invalidate(c, id)
	return nil
}

func (im *impl) ClaimProceeds(c ctx.Ctx, caller domain.Account, id domain.AuctionId) error {
	err := im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		a, err := im.auction.FindOne(c, id)
		if err != nil {
			return err
		}

		if !a.IsEndedAt(timeNow()) {
			return domain.ErrAuctionNotEnded
		}
		if !caller.Equals(a.Owner) {
			return domain.ErrUnauthorized
		}
		if a.ProceedsClaimed {
			return domain.ErrAlreadyClaimed
		}
		if !a.HasWinner() {
			return domain.ErrNoBid
		}

		if err := im.ledger.Move(c, payment.Transfer{
			From:      im.contract,
			To:        a.Owner,
			Amount:    a.CurrentPrice,
			Kind:      payment.EntryKindProceeds,
			AuctionId: &id,
		}); err != nil {
			return err
		}

		proceedsClaimed := true
		return im.auction.Patch(c, id, auction.Patchable{ProceedsClaimed: &proceedsClaimed})
	})
	if err != nil {
		return err
	}

	im.invalidate(c, id)
	return nil
}

func (im *impl) ClaimBack(c ctx.Ctx, caller domain.Account, id domain.AuctionId) error {
	err := im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		a, err := im.auction.FindOne(c, id)
		if err != nil {
			return err
		}

		if !a.IsEndedAt(timeNow()) {
			return domain.ErrAuctionNotEnded
		}
		if !caller.Equals(a.Owner) {
			return domain.ErrUnauthorized
		}
		if a.HasWinner() {
			return domain.ErrTokenSold
		}
		if a.NftClaimed {
			return domain.ErrAlreadyClaimed
		}

		if err := im.tokenUC.TransferUnguarded(c, a.TokenId, im.contract, a.Owner); err != nil {
			return err
		}
		nftClaimed := true
		if err := im.auction.Patch(c, id, auction.Patchable{NftClaimed: &nftClaimed}); err != nil {
			return err
		}
		return im.auction.UnmarkEscrowed(c, a.TokenId)
	})
	if err != nil {
		return err
	}

	im.invalidate(c, id)
	return nil
}

func (im *impl) Get(c ctx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	if im.cache == nil {
		return im.auction.FindOne(c, id)
	}

	res := &auction.Auction{}
	err := im.cache.GetByFunc(c, cacheKey(id), res, func() (interface{}, error) {
		return im.auction.FindOne(c, id)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	res, err := im.auction.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("auction.FindAll failed")
		return nil, err
	}
	return res, nil
}
