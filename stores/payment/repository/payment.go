package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/database/mongoclient"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/payment"
	"github.com/bidhaus/goapi/service/query"
)

type paymentRepoImpl struct {
	q query.Mongo
}

func NewPaymentRepo(q query.Mongo) payment.Repo {
	return &paymentRepoImpl{q}
}

func (im *paymentRepoImpl) FindAccount(ctx bCtx.Ctx, account domain.Account) (*payment.Account, error) {
	res := &payment.Account{}
	if err := im.q.FindOne(ctx, domain.TableLedgerAccounts, bson.M{"account": account}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"account": account,
			"err":     err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *paymentRepoImpl) Credit(ctx bCtx.Ctx, account domain.Account, amount domain.Amount) error {
	selector := bson.M{"account": account}
	update := bson.M{
		"$inc":         bson.M{"balance": int64(amount)},
		"$currentDate": bson.M{"updatedAt": true},
	}
	if err := im.q.CustomPatch(ctx, domain.TableLedgerAccounts, selector, update, true); err != nil {
		ctx.WithFields(log.Fields{
			"account": account,
			"amount":  amount,
			"err":     err,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *paymentRepoImpl) Debit(ctx bCtx.Ctx, account domain.Account, amount domain.Amount) error {
	// the balance guard in the selector makes the check and the decrement one
	// atomic operation
	selector := bson.M{
		"account": account,
		"balance": bson.M{"$gte": int64(amount)},
	}
	update := bson.M{
		"$inc":         bson.M{"balance": -int64(amount)},
		"$currentDate": bson.M{"updatedAt": true},
	}
	if err := im.q.CustomPatch(ctx, domain.TableLedgerAccounts, selector, update, false); err == query.ErrNotFound {
		return domain.ErrInsufficientFunds
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"account": account,
			"amount":  amount,
			"err":     err,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *paymentRepoImpl) InsertEntry(ctx bCtx.Ctx, entry *payment.Entry) error {
	if err := im.q.Insert(ctx, domain.TableLedgerEntries, entry); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"entry": entry,
			"err":   err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *paymentRepoImpl) FindEntries(ctx bCtx.Ctx, optFns ...payment.EntryFindAllOptionsFunc) ([]*payment.Entry, error) {
	opts, err := payment.GetEntryFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("payment.GetEntryFindAllOptions failed")
		return nil, err
	}

	var (
		offset int    = 0
		limit  int    = 0
		sort   string = "-createdAt"
	)
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	if opts.SortBy != nil && opts.SortDir != nil {
		sort = *opts.SortBy
		if *opts.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		ctx.WithField("err", err).Error("MakeBsonM failed")
		return nil, err
	}

	if opts.Account != nil {
		qry["$or"] = []bson.M{
			{"from": *opts.Account},
			{"to": *opts.Account},
		}
	}

	res := []*payment.Entry{}
	if err := im.q.Search(ctx, domain.TableLedgerEntries, offset, limit, sort, qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
