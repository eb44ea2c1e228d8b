package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/database/mongoclient"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
	"github.com/bidhaus/goapi/service/query"
)

const counterName = "auctions"

type counter struct {
	Name string `bson:"name"`
	Seq  uint64 `bson:"seq"`
}

type escrow struct {
	TokenId domain.TokenId `bson:"tokenId"`
}

type auctionRepoImpl struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

func (im *auctionRepoImpl) FindOne(ctx bCtx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	res := &auction.Auction{}
	if err := im.q.FindOne(ctx, domain.TableAuctions, bson.M{"auctionId": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"auctionId": id,
			"err":       err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *auctionRepoImpl) makeQuery(ctx bCtx.Ctx, opts auction.FindAllOptions) (bson.M, error) {
	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		ctx.WithField("err", err).Error("MakeBsonM failed")
		return nil, err
	}

	if opts.EndTimeBefore != nil || opts.EndTimeAfter != nil {
		subQuery := bson.M{}
		if opts.EndTimeBefore != nil {
			subQuery["$lt"] = domain.ToUnixNano(*opts.EndTimeBefore)
		}
		if opts.EndTimeAfter != nil {
			subQuery["$gte"] = domain.ToUnixNano(*opts.EndTimeAfter)
		}
		qry["endTime"] = subQuery
	}

	return qry, nil
}

func (im *auctionRepoImpl) FindAll(ctx bCtx.Ctx, optFns ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("auction.GetFindAllOptions failed")
		return nil, err
	}

	var (
		offset int    = 0
		limit  int    = 0
		sort   string = "auctionId"
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

	qry, err := im.makeQuery(ctx, opts)
	if err != nil {
		return nil, err
	}

	res := []*auction.Auction{}
	if err := im.q.Search(ctx, domain.TableAuctions, offset, limit, sort, qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *auctionRepoImpl) Count(ctx bCtx.Ctx, optFns ...auction.FindAllOptionsFunc) (int, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("auction.GetFindAllOptions failed")
		return 0, err
	}

	qry, err := im.makeQuery(ctx, opts)
	if err != nil {
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableAuctions, qry)
	if err != nil {
		ctx.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return cnt, nil
}

func (im *auctionRepoImpl) Insert(ctx bCtx.Ctx, a *auction.Auction) error {
	if err := im.q.Insert(ctx, domain.TableAuctions, a); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"auction": a,
			"err":     err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Patch(ctx bCtx.Ctx, id domain.AuctionId, patchable auction.Patchable) error {
	if err := im.q.Patch(ctx, domain.TableAuctions, bson.M{"auctionId": id}, patchable); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"auctionId": id,
			"patchable": patchable,
			"err":       err,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) NextId(ctx bCtx.Ctx) (domain.AuctionId, error) {
	res := &counter{}
	if err := im.q.Increment(ctx, domain.TableCounters, bson.M{"name": counterName}, res, "seq", int64(1)); err != nil {
		ctx.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return domain.AuctionId(res.Seq), nil
}

func (im *auctionRepoImpl) IsEscrowed(ctx bCtx.Ctx, tokenId domain.TokenId) (bool, error) {
	res := &escrow{}
	if err := im.q.FindOne(ctx, domain.TableEscrows, bson.M{"tokenId": tokenId}, res); err == query.ErrNotFound {
		return false, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("q.FindOne failed")
		return false, err
	}
	return true, nil
}

func (im *auctionRepoImpl) MarkEscrowed(ctx bCtx.Ctx, tokenId domain.TokenId) error {
	if err := im.q.Insert(ctx, domain.TableEscrows, &escrow{TokenId: tokenId}); err == query.ErrDuplicateKey {
		return domain.ErrTokenEscrowed
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) UnmarkEscrowed(ctx bCtx.Ctx, tokenId domain.TokenId) error {
	if err := im.q.Remove(ctx, domain.TableEscrows, bson.M{"tokenId": tokenId}); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
