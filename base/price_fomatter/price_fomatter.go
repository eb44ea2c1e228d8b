package pricefomatter

import (
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/bidhaus/goapi/domain"
)

// PriceFormatter converts between minor currency units and the display form
// used on wire responses and ledger entries.
type PriceFormatter interface {
	FormatAmount(amount domain.Amount) string
	ParseAmount(display string) (domain.Amount, error)
}

type impl struct {
	decimals int32
}

// New creates a formatter for a currency with the given number of decimals.
func New(decimals int32) PriceFormatter {
	return &impl{decimals: decimals}
}

func (im *impl) FormatAmount(amount domain.Amount) string {
	return decimal.New(int64(amount), -im.decimals).String()
}

func (im *impl) ParseAmount(display string) (domain.Amount, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return 0, xerrors.Errorf("parse amount %q: %w", display, domain.ErrBadParamInput)
	}

	d = d.Shift(im.decimals)
	if d.IsNegative() || !d.IsInteger() {
		return 0, xerrors.Errorf("amount %q out of range: %w", display, domain.ErrBadParamInput)
	}

	v := d.BigInt()
	if !v.IsUint64() {
		return 0, xerrors.Errorf("amount %q out of range: %w", display, domain.ErrBadParamInput)
	}

	return domain.Amount(v.Uint64()), nil
}
