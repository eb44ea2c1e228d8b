package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrUnauthorized will throw if the caller is not the required party for the action
	ErrUnauthorized = errors.New("caller is not allowed to perform this action")
	// ErrWrongFee will throw if the attached value does not match the fixed fee
	ErrWrongFee = errors.New("attached value does not match the required fee")

	ErrAuctionNotStarted = errors.New("auction has not started")
	ErrAuctionEnded      = errors.New("auction has already ended")
	ErrAuctionNotEnded   = errors.New("auction is not over yet")
	ErrBidTooLow         = errors.New("bid must be greater than the current price")
	ErrAlreadyClaimed    = errors.New("already claimed")
	ErrTokenEscrowed     = errors.New("token is already under auction")
	ErrNoBid             = errors.New("auction received no bid")
	ErrTokenSold         = errors.New("token has been sold")

	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrInvalidAccount    = errors.New("Invalid account id")
)
