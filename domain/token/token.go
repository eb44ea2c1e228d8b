package token

import (
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
)

type Metadata struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	MediaUri    string `json:"mediaUri,omitempty" bson:"mediaUri,omitempty"`
}

type Token struct {
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner    domain.Account `json:"owner" bson:"owner"`
	Metadata *Metadata      `json:"metadata,omitempty" bson:"metadata,omitempty"`
	MintedAt time.Time      `json:"mintedAt" bson:"mintedAt"`
}

type Patchable struct {
	Owner *domain.Account `bson:"owner,omitempty"`
}

type FindAllOptions struct {
	SortBy  *string         `bson:"-"`
	SortDir *domain.SortDir `bson:"-"`
	Offset  *int32          `bson:"-"`
	Limit   *int32          `bson:"-"`
	Owner   *domain.Account `bson:"owner"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSort(sortby string, sortdir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortby
		options.SortDir = &sortdir
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithOwner(owner domain.Account) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = &owner
		return nil
	}
}

type Repo interface {
	FindOne(ctx.Ctx, domain.TokenId) (*Token, error)
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]*Token, error)
	Insert(ctx.Ctx, *Token) error
	Patch(ctx.Ctx, domain.TokenId, Patchable) error
}

// UseCase is the custody registry. Transfer checks that `from` currently owns
// the token; TransferUnguarded skips the check and is reserved for moving
// escrowed tokens held by the contract account itself.
type UseCase interface {
	Mint(c ctx.Ctx, caller domain.Account, attached domain.Amount, tokenId domain.TokenId, metadata *Metadata) (*Token, error)
	Get(c ctx.Ctx, tokenId domain.TokenId) (*Token, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Token, error)
	OwnerOf(c ctx.Ctx, tokenId domain.TokenId) (domain.Account, error)
	Transfer(c ctx.Ctx, tokenId domain.TokenId, from, to domain.Account) error
	TransferUnguarded(c ctx.Ctx, tokenId domain.TokenId, from, to domain.Account) error
}
