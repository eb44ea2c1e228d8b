package pricefomatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bidhaus/goapi/domain"
)

func TestFormatAmount(t *testing.T) {
	req := require.New(t)

	pf := New(4)
	req.Equal("0.015", pf.FormatAmount(150))
	req.Equal("1", pf.FormatAmount(10000))
	req.Equal("0", pf.FormatAmount(0))
}

func TestParseAmount(t *testing.T) {
	req := require.New(t)

	pf := New(4)

	amount, err := pf.ParseAmount("0.015")
	req.NoError(err)
	req.Equal(domain.Amount(150), amount)

	amount, err = pf.ParseAmount("1")
	req.NoError(err)
	req.Equal(domain.Amount(10000), amount)

	_, err = pf.ParseAmount("not-a-number")
	req.True(errors.Is(err, domain.ErrBadParamInput))

	_, err = pf.ParseAmount("-1")
	req.True(errors.Is(err, domain.ErrBadParamInput))

	// more precision than the currency carries
	_, err = pf.ParseAmount("0.00001")
	req.True(errors.Is(err, domain.ErrBadParamInput))
}
