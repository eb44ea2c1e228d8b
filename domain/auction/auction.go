package auction

import (
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
)

// State is derived from the record and wall-clock time. The record stores no
// status field; the bidding window and the two claim flags fully determine it.
type State string

const (
	StateScheduled             State = "scheduled"
	StateOpen                  State = "open"
	StateEndedUnclaimed        State = "endedUnclaimed"
	StateEndedPartiallyClaimed State = "endedPartiallyClaimed"
	StateEndedSettled          State = "endedSettled"
)

// FeeSchedule holds the fixed deposits required to mint, open an auction and
// enroll a bid. Values are minor currency units, injected from config.
type FeeSchedule struct {
	Mint          domain.Amount `json:"mint" yaml:"mint"`
	CreateAuction domain.Amount `json:"createAuction" yaml:"createAuction"`
	Enroll        domain.Amount `json:"enroll" yaml:"enroll"`
}

type Auction struct {
	AuctionId  domain.AuctionId `json:"auctionId" bson:"auctionId"`
	Owner      domain.Account   `json:"owner" bson:"owner"`
	TokenId    domain.TokenId   `json:"tokenId" bson:"tokenId"`
	StartPrice domain.Amount    `json:"startPrice" bson:"startPrice"`
	StartTime  domain.UnixNano  `json:"startTime" bson:"startTime"`
	EndTime    domain.UnixNano  `json:"endTime" bson:"endTime"`

	// highest accepted bid so far, never below StartPrice
	CurrentPrice domain.Amount `json:"currentPrice" bson:"currentPrice"`
	// absent until the first valid bid is accepted
	Winner *domain.Account `json:"winner,omitempty" bson:"winner,omitempty"`

	// one-shot settlement flags
	ProceedsClaimed bool `json:"proceedsClaimed" bson:"proceedsClaimed"`
	NftClaimed      bool `json:"nftClaimed" bson:"nftClaimed"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (a *Auction) HasWinner() bool {
	return a.Winner != nil && !a.Winner.IsEmpty()
}

// IsEndedAt reports whether the bidding window has closed, i.e. now >= EndTime.
func (a *Auction) IsEndedAt(now time.Time) bool {
	return !now.Before(a.EndTime.Time())
}

// StateAt derives the lifecycle state at the given instant.
func (a *Auction) StateAt(now time.Time) State {
	switch {
	case now.Before(a.StartTime.Time()):
		return StateScheduled
	case now.Before(a.EndTime.Time()):
		return StateOpen
	case a.ProceedsClaimed && a.NftClaimed:
		return StateEndedSettled
	case a.ProceedsClaimed || a.NftClaimed:
		return StateEndedPartiallyClaimed
	default:
		return StateEndedUnclaimed
	}
}

type Patchable struct {
	CurrentPrice    *domain.Amount  `bson:"currentPrice,omitempty"`
	Winner          *domain.Account `bson:"winner,omitempty"`
	ProceedsClaimed *bool           `bson:"proceedsClaimed,omitempty"`
	NftClaimed      *bool           `bson:"nftClaimed,omitempty"`
}

type FindAllOptions struct {
	SortBy        *string         `bson:"-"`
	SortDir       *domain.SortDir `bson:"-"`
	Offset        *int32          `bson:"-"`
	Limit         *int32          `bson:"-"`
	Owner         *domain.Account `bson:"owner"`
	Winner        *domain.Account `bson:"winner"`
	TokenId       *domain.TokenId `bson:"tokenId"`
	EndTimeBefore *time.Time      `bson:"-"`
	EndTimeAfter  *time.Time      `bson:"-"`
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

func WithWinner(winner domain.Account) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Winner = &winner
		return nil
	}
}

func WithTokenId(tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TokenId = &tokenId
		return nil
	}
}

func WithEndTimeBefore(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndTimeBefore = &t
		return nil
	}
}

func WithEndTimeAfter(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndTimeAfter = &t
		return nil
	}
}

type Repo interface {
	FindOne(ctx.Ctx, domain.AuctionId) (*Auction, error)
	FindAll(ctx.Ctx, ...FindAllOptionsFunc) ([]*Auction, error)
	Count(ctx.Ctx, ...FindAllOptionsFunc) (int, error)
	Insert(ctx.Ctx, *Auction) error
	Patch(ctx.Ctx, domain.AuctionId, Patchable) error

	// NextId allocates a fresh auction id; ids are strictly increasing
	NextId(ctx.Ctx) (domain.AuctionId, error)

	// escrowed-token set, one open auction per token
	IsEscrowed(ctx.Ctx, domain.TokenId) (bool, error)
	MarkEscrowed(ctx.Ctx, domain.TokenId) error
	UnmarkEscrowed(ctx.Ctx, domain.TokenId) error
}

type UseCase interface {
	Create(c ctx.Ctx, caller domain.Account, attached domain.Amount, tokenId domain.TokenId, startPrice domain.Amount, duration time.Duration) (*Auction, error)
	Bid(c ctx.Ctx, caller domain.Account, attached domain.Amount, id domain.AuctionId) error
	ClaimAsset(c ctx.Ctx, caller domain.Account, id domain.AuctionId) error
	ClaimProceeds(c ctx.Ctx, caller domain.Account, id domain.AuctionId) error
	ClaimBack(c ctx.Ctx, caller domain.Account, id domain.AuctionId) error
	Get(c ctx.Ctx, id domain.AuctionId) (*Auction, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
}
