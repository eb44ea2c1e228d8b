package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/delivery"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/payment"
	"github.com/bidhaus/goapi/middleware"
	authMiddleware "github.com/bidhaus/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	payment payment.UseCase
}

func New(e *echo.Echo, payment payment.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		payment: payment,
	}
	g := e.Group("/balances")
	g.GET("/:account", h.getBalance, middleware.IsValidAccount("account"))
	g.GET("/:account/entries", h.getEntries, middleware.IsValidAccount("account"))
	g.POST("/:account/deposits", h.deposit, middleware.IsValidAccount("account"), authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account := domain.Account(c.Param("account"))

	balance, err := h.payment.Balance(ctx, account)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Account domain.Account `json:"account"`
		Balance domain.Amount  `json:"balance"`
	}{
		Account: account,
		Balance: balance,
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getEntries
//
//	@Summary		Ledger history for an account
//	@Description	Returns entries where the account is either the payer or the
//	@Description	payee, newest first.
//	@Tags			balances
//	@Accept			json
//	@Produce		json
//	@Param			account		path		string	true	"account id"	example(alice.test)
//	@Param			kind		query		string	false	"entry kind"	example(refund)
//	@Param			auctionId	query		int		false	"related auction"
//	@Param			offset		query		int		false	"paging offset"
//	@Param			limit		query		int		false	"paging size"
//	@Success		200			{array}		payment.Entry
//	@Failure		400
//	@Failure		500
//	@Router			/balances/{account}/entries [get]
func (h *handler) getEntries(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Account   domain.Account     `param:"account"`
		Kind      *payment.EntryKind `query:"kind"`
		AuctionId *domain.AuctionId  `query:"auctionId"`
		Offset    int32              `query:"offset"`
		Limit     int32              `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []payment.EntryFindAllOptionsFunc{
		payment.EntryWithAccount(p.Account),
		payment.EntryWithPagination(p.Offset, p.Limit),
	}

	if p.Kind != nil {
		opts = append(opts, payment.EntryWithKind(*p.Kind))
	}

	if p.AuctionId != nil {
		opts = append(opts, payment.EntryWithAuctionId(*p.AuctionId))
	}

	if res, err := h.payment.History(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// deposit tops up an account. Value enters the ledger only through here, so
// the route is restricted to admin accounts standing in for the platform.
func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Account domain.Account `param:"account"`
		Amount  domain.Amount  `json:"amount" validate:"required"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.payment.Deposit(ctx, p.Account, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, nil)
}
