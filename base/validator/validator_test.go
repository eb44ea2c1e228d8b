package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidAccount(t *testing.T) {
	req := require.New(t)

	req.True(IsValidAccount("alice.test"))
	req.True(IsValidAccount("auction.bidhaus"))
	req.True(IsValidAccount("a1-b2.c3"))
	req.True(IsValidAccount("ok"))

	req.False(IsValidAccount(""))
	req.False(IsValidAccount("a"))
	req.False(IsValidAccount("Alice.test"))
	req.False(IsValidAccount(".alice"))
	req.False(IsValidAccount("alice."))
	req.False(IsValidAccount("ali..ce"))
	req.False(IsValidAccount("alice!"))
	req.False(IsValidAccount("-alice"))
}
