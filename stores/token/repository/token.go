package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/database/mongoclient"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/token"
	"github.com/bidhaus/goapi/service/query"
)

type tokenRepoImpl struct {
	q query.Mongo
}

func NewTokenRepo(q query.Mongo) token.Repo {
	return &tokenRepoImpl{q}
}

func (im *tokenRepoImpl) FindOne(ctx bCtx.Ctx, tokenId domain.TokenId) (*token.Token, error) {
	res := &token.Token{}
	if err := im.q.FindOne(ctx, domain.TableTokens, bson.M{"tokenId": tokenId}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *tokenRepoImpl) FindAll(ctx bCtx.Ctx, optFns ...token.FindAllOptionsFunc) ([]*token.Token, error) {
	opts, err := token.GetFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("token.GetFindAllOptions failed")
		return nil, err
	}

	var (
		offset int    = 0
		limit  int    = 0
		sort   string = "tokenId"
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

	res := []*token.Token{}
	if err := im.q.Search(ctx, domain.TableTokens, offset, limit, sort, qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *tokenRepoImpl) Insert(ctx bCtx.Ctx, t *token.Token) error {
	if err := im.q.Insert(ctx, domain.TableTokens, t); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"token": t,
			"err":   err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *tokenRepoImpl) Patch(ctx bCtx.Ctx, tokenId domain.TokenId, patchable token.Patchable) error {
	if err := im.q.Patch(ctx, domain.TableTokens, bson.M{"tokenId": tokenId}, patchable); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"tokenId":   tokenId,
			"patchable": patchable,
			"err":       err,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
