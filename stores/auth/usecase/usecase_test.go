package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	tkn, err := u.SignToken(ctx, "alice.test")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	acc, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "alice.test", acc)
}

func TestSignTokenInvalidAccount(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	_, err := u.SignToken(ctx, "Not An Account")
	assert.Equal(t, domain.ErrInvalidAccount, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	ctx := ctx.Background()
	tkn, err := usecase.New("jwt-secret").SignToken(ctx, "alice.test")
	assert.NoError(t, err)
	_, err = usecase.New("other-secret").ParseToken(ctx, tkn)
	assert.Error(t, err)
}

// ParseWithClaims returns a nil token for input that is not a JWT at all;
// ParseToken must return the parse error instead of panicking.
func TestParseTokenMalformed(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	for _, tkn := range []string{"", "garbage", "a.b", "a.b.c"} {
		acc, err := u.ParseToken(ctx, tkn)
		assert.Error(t, err)
		assert.Empty(t, acc)
	}
}
