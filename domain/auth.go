package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/bidhaus/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Account string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, account Account) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (account string, err error)
}
