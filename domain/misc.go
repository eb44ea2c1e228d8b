package domain

import (
	"regexp"
	"time"
)

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)

// Account is a platform account identifier, e.g. "alice.test" or "auction.bidhaus".
// The platform authenticates callers; the api trusts the identity it is handed.
type Account string

// account ids are dot separated parts of lowercase alphanumerics,
// optionally joined by single hyphens or underscores
var accountRe = regexp.MustCompile(`^(([a-z\d]+[-_])*[a-z\d]+\.)*([a-z\d]+[-_])*[a-z\d]+$`)

func (a Account) IsValid() bool {
	return len(a) >= 2 && len(a) <= 64 && accountRe.MatchString(string(a))
}

func (a Account) IsEmpty() bool {
	return len(a) == 0
}

func (a Account) Equals(b Account) bool {
	return a == b
}

// TokenId identifies a non-fungible token in the custody registry
type TokenId string

func (t TokenId) IsEmpty() bool {
	return len(t) == 0
}

// AuctionId is allocated from a strictly increasing counter and never reused
type AuctionId uint64

// Amount is a value in minor currency units
type Amount uint64

// UnixNano is a wall-clock timestamp with nanosecond resolution
type UnixNano int64

func (t UnixNano) Time() time.Time {
	return time.Unix(0, int64(t))
}

func ToUnixNano(t time.Time) UnixNano {
	return UnixNano(t.UnixNano())
}
