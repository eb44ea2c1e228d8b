package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bidhaus/goapi/base/ctx"
)

// checkIndex mode runs the callback directly because the explain command
// cannot run inside a transaction. This must never ship enabled where
// atomicity matters. A nil client proves no session is opened.
func TestRunWithTransactionCheckIndexMode(t *testing.T) {
	q := New(nil, true)

	ran := false
	err := q.RunWithTransaction(ctx.Background(), func(c ctx.Ctx) error {
		ran = true
		return nil
	})
	assert.Nil(t, err)
	assert.True(t, ran)

	wantErr := errors.New("write conflict")
	err = q.RunWithTransaction(ctx.Background(), func(c ctx.Ctx) error {
		return wantErr
	})
	assert.Equal(t, wantErr, err)
}
