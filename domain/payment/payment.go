package payment

import (
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
)

// Account is a ledger account with its current balance in minor units.
type Account struct {
	Account   domain.Account `json:"account" bson:"account"`
	Balance   domain.Amount  `json:"balance" bson:"balance"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type EntryKind string

const (
	// top-up from the platform
	EntryKindDeposit EntryKind = "deposit"
	// fixed mint / create-auction / enroll fee moved to the treasury
	EntryKindFee EntryKind = "fee"
	// bid amount escrowed with the contract account
	EntryKindBid EntryKind = "bid"
	// displaced bidder made whole, minus the enroll fee
	EntryKindRefund EntryKind = "refund"
	// winning amount paid out to the auction owner
	EntryKindProceeds EntryKind = "proceeds"
)

// Entry is an immutable record of one value movement.
type Entry struct {
	Id            string            `json:"id" bson:"id"`
	From          domain.Account    `json:"from,omitempty" bson:"from,omitempty"`
	To            domain.Account    `json:"to" bson:"to"`
	Amount        domain.Amount     `json:"amount" bson:"amount"`
	DisplayAmount string            `json:"displayAmount" bson:"displayAmount"`
	Kind          EntryKind         `json:"kind" bson:"kind"`
	AuctionId     *domain.AuctionId `json:"auctionId,omitempty" bson:"auctionId,omitempty"`
	CreatedAt     time.Time         `json:"createdAt" bson:"createdAt"`
}

type EntryFindAllOptions struct {
	SortBy    *string           `bson:"-"`
	SortDir   *domain.SortDir   `bson:"-"`
	Offset    *int32            `bson:"-"`
	Limit     *int32            `bson:"-"`
	Account   *domain.Account   `bson:"-"`
	Kind      *EntryKind        `bson:"kind"`
	AuctionId *domain.AuctionId `bson:"auctionId"`
}

type EntryFindAllOptionsFunc func(*EntryFindAllOptions) error

func GetEntryFindAllOptions(opts ...EntryFindAllOptionsFunc) (EntryFindAllOptions, error) {
	res := EntryFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func EntryWithSort(sortby string, sortdir domain.SortDir) EntryFindAllOptionsFunc {
	return func(options *EntryFindAllOptions) error {
		options.SortBy = &sortby
		options.SortDir = &sortdir
		return nil
	}
}

func EntryWithPagination(offset int32, limit int32) EntryFindAllOptionsFunc {
	return func(options *EntryFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// EntryWithAccount matches entries where the account is either side
func EntryWithAccount(account domain.Account) EntryFindAllOptionsFunc {
	return func(options *EntryFindAllOptions) error {
		options.Account = &account
		return nil
	}
}

func EntryWithKind(kind EntryKind) EntryFindAllOptionsFunc {
	return func(options *EntryFindAllOptions) error {
		options.Kind = &kind
		return nil
	}
}

func EntryWithAuctionId(id domain.AuctionId) EntryFindAllOptionsFunc {
	return func(options *EntryFindAllOptions) error {
		options.AuctionId = &id
		return nil
	}
}

type Repo interface {
	FindAccount(ctx.Ctx, domain.Account) (*Account, error)
	// Credit adds to the balance, creating the account on first use
	Credit(ctx.Ctx, domain.Account, domain.Amount) error
	// Debit subtracts from the balance; domain.ErrInsufficientFunds when it
	// would go negative
	Debit(ctx.Ctx, domain.Account, domain.Amount) error
	InsertEntry(ctx.Ctx, *Entry) error
	FindEntries(ctx.Ctx, ...EntryFindAllOptionsFunc) ([]*Entry, error)
}

type Transfer struct {
	From      domain.Account
	To        domain.Account
	Amount    domain.Amount
	Kind      EntryKind
	AuctionId *domain.AuctionId
}

type UseCase interface {
	// Balance returns 0 for accounts that never held value
	Balance(c ctx.Ctx, account domain.Account) (domain.Amount, error)
	Deposit(c ctx.Ctx, account domain.Account, amount domain.Amount) error
	// Move debits, credits and records the entry; the enclosing mongo
	// transaction makes the three writes atomic
	Move(c ctx.Ctx, transfer Transfer) error
	History(c ctx.Ctx, opts ...EntryFindAllOptionsFunc) ([]*Entry, error)
}
