package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/log"
	pricefomatter "github.com/bidhaus/goapi/base/price_fomatter"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/payment"
	"github.com/bidhaus/goapi/service/query"
)

var timeNow = time.Now

type PaymentUseCaseCfg struct {
	Q              query.Mongo
	PaymentRepo    payment.Repo
	PriceFormatter pricefomatter.PriceFormatter
}

type impl struct {
	q         query.Mongo
	payment   payment.Repo
	formatter pricefomatter.PriceFormatter
}

func New(cfg *PaymentUseCaseCfg) payment.UseCase {
	return &impl{
		q:         cfg.Q,
		payment:   cfg.PaymentRepo,
		formatter: cfg.PriceFormatter,
	}
}

func (im *impl) Balance(c ctx.Ctx, account domain.Account) (domain.Amount, error) {
	acc, err := im.payment.FindAccount(c, account)
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"account": account,
			"err":     err,
		}).Error("payment.FindAccount failed")
		return 0, err
	}
	return acc.Balance, nil
}

func (im *impl) Deposit(c ctx.Ctx, account domain.Account, amount domain.Amount) error {
	if !account.IsValid() {
		return domain.ErrInvalidAccount
	}
	if amount == 0 {
		return domain.ErrBadParamInput
	}

	return im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.payment.Credit(c, account, amount); err != nil {
			c.WithFields(log.Fields{
				"account": account,
				"amount":  amount,
				"err":     err,
			}).Error("payment.Credit failed")
			return err
		}
		entry := &payment.Entry{
			Id:            uuid.New().String(),
			To:            account,
			Amount:        amount,
			DisplayAmount: im.formatter.FormatAmount(amount),
			Kind:          payment.EntryKindDeposit,
			CreatedAt:     timeNow(),
		}
		if err := im.payment.InsertEntry(c, entry); err != nil {
			c.WithFields(log.Fields{
				"entry": entry,
				"err":   err,
			}).Error("payment.InsertEntry failed")
			return err
		}
		return nil
	})
}

func (im *impl) Move(c ctx.Ctx, transfer payment.Transfer) error {
	if transfer.From.IsEmpty() || transfer.To.IsEmpty() {
		return domain.ErrInvalidAccount
	}
	if transfer.Amount == 0 {
		// nothing to move, keep the ledger free of zero entries
		return nil
	}

	if err := im.payment.Debit(c, transfer.From, transfer.Amount); err != nil {
		if err != domain.ErrInsufficientFunds {
			c.WithFields(log.Fields{
				"transfer": transfer,
				"err":      err,
			}).Error("payment.Debit failed")
		}
		return err
	}
	if err := im.payment.Credit(c, transfer.To, transfer.Amount); err != nil {
		c.WithFields(log.Fields{
			"transfer": transfer,
			"err":      err,
		}).Error("payment.Credit failed")
		return err
	}

	entry := &payment.Entry{
		Id:            uuid.New().String(),
		From:          transfer.From,
		To:            transfer.To,
		Amount:        transfer.Amount,
		DisplayAmount: im.formatter.FormatAmount(transfer.Amount),
		Kind:          transfer.Kind,
		AuctionId:     transfer.AuctionId,
		CreatedAt:     timeNow(),
	}
	if err := im.payment.InsertEntry(c, entry); err != nil {
		c.WithFields(log.Fields{
			"entry": entry,
			"err":   err,
		}).Error("payment.InsertEntry failed")
		return err
	}
	return nil
}

func (im *impl) History(c ctx.Ctx, opts ...payment.EntryFindAllOptionsFunc) ([]*payment.Entry, error) {
	res, err := im.payment.FindEntries(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("payment.FindEntries failed")
		return nil, err
	}
	return res, nil
}
