package usecase

import (
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
	"github.com/bidhaus/goapi/domain/payment"
	"github.com/bidhaus/goapi/domain/token"
	"github.com/bidhaus/goapi/service/query"
)

var timeNow = time.Now

type TokenUseCaseCfg struct {
	Q         query.Mongo
	TokenRepo token.Repo
	Ledger    payment.UseCase
	Fees      auction.FeeSchedule
	Treasury  domain.Account
}

type impl struct {
	q        query.Mongo
	token    token.Repo
	ledger   payment.UseCase
	fees     auction.FeeSchedule
	treasury domain.Account
}

func New(cfg *TokenUseCaseCfg) token.UseCase {
	return &impl{
		q:        cfg.Q,
		token:    cfg.TokenRepo,
		ledger:   cfg.Ledger,
		fees:     cfg.Fees,
		treasury: cfg.Treasury,
	}
}

func (im *impl) Mint(c ctx.Ctx, caller domain.Account, attached domain.Amount, tokenId domain.TokenId, metadata *token.Metadata) (*token.Token, error) {
	if !caller.IsValid() {
		return nil, domain.ErrInvalidAccount
	}
	if tokenId.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}
	if attached != im.fees.Mint {
		return nil, domain.ErrWrongFee
	}

	t := &token.Token{
		TokenId:  tokenId,
		Owner:    caller,
		Metadata: metadata,
		MintedAt: timeNow(),
	}

	err := im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.token.Insert(c, t); err != nil {
			if err != domain.ErrConflict {
				c.WithFields(log.Fields{
					"token": t,
					"err":   err,
				}).Error("token.Insert failed")
			}
			return err
		}
		if err := im.ledger.Move(c, payment.Transfer{
			From:   caller,
			To:     im.treasury,
			Amount: attached,
			Kind:   payment.EntryKindFee,
		}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (im *impl) Get(c ctx.Ctx, tokenId domain.TokenId) (*token.Token, error) {
	res, err := im.token.FindOne(c, tokenId)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"tokenId": tokenId,
				"err":     err,
			}).Error("token.FindOne failed")
		}
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...token.FindAllOptionsFunc) ([]*token.Token, error) {
	res, err := im.token.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("token.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) OwnerOf(c ctx.Ctx, tokenId domain.TokenId) (domain.Account, error) {
	res, err := im.Get(c, tokenId)
	if err != nil {
		return "", err
	}
	return res.Owner, nil
}

func (im *impl) Transfer(c ctx.Ctx, tokenId domain.TokenId, from, to domain.Account) error {
	owner, err := im.OwnerOf(c, tokenId)
	if err != nil {
		return err
	}
	if !owner.Equals(from) {
		return domain.ErrUnauthorized
	}
	return im.TransferUnguarded(c, tokenId, from, to)
}

func (im *impl) TransferUnguarded(c ctx.Ctx, tokenId domain.TokenId, from, to domain.Account) error {
	if to.IsEmpty() {
		return domain.ErrInvalidAccount
	}
	if err := im.token.Patch(c, tokenId, token.Patchable{Owner: &to}); err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"tokenId": tokenId,
				"from":    from,
				"to":      to,
				"err":     err,
			}).Error("token.Patch failed")
		}
		return err
	}
	return nil
}
