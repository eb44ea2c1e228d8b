package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bidhaus/goapi/domain"
)

func TestStateAt(t *testing.T) {
	req := require.New(t)

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	a := Auction{
		AuctionId:    1,
		Owner:        "alice.test",
		TokenId:      "art-1",
		StartPrice:   100,
		StartTime:    domain.ToUnixNano(start),
		EndTime:      domain.ToUnixNano(end),
		CurrentPrice: 100,
	}

	req.Equal(StateScheduled, a.StateAt(start.Add(-time.Second)))
	req.Equal(StateOpen, a.StateAt(start))
	req.Equal(StateOpen, a.StateAt(end.Add(-time.Nanosecond)))
	req.Equal(StateEndedUnclaimed, a.StateAt(end))
	req.Equal(StateEndedUnclaimed, a.StateAt(end.Add(time.Hour)))

	a.NftClaimed = true
	req.Equal(StateEndedPartiallyClaimed, a.StateAt(end))

	a.ProceedsClaimed = true
	req.Equal(StateEndedSettled, a.StateAt(end))

	// the claim flags only matter once the window has closed
	req.Equal(StateOpen, a.StateAt(start.Add(time.Minute)))
}

func TestIsEndedAt(t *testing.T) {
	req := require.New(t)

	end := time.Date(2023, 1, 1, 1, 0, 0, 0, time.UTC)
	a := Auction{EndTime: domain.ToUnixNano(end)}

	req.False(a.IsEndedAt(end.Add(-time.Nanosecond)))
	req.True(a.IsEndedAt(end))
	req.True(a.IsEndedAt(end.Add(time.Nanosecond)))
}

func TestHasWinner(t *testing.T) {
	req := require.New(t)

	a := Auction{}
	req.False(a.HasWinner())

	empty := domain.Account("")
	a.Winner = &empty
	req.False(a.HasWinner())

	bob := domain.Account("bob.test")
	a.Winner = &bob
	req.True(a.HasWinner())
}
