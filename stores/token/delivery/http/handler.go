package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/delivery"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/token"
	authMiddleware "github.com/bidhaus/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	token token.UseCase
}

func New(e *echo.Echo, token token.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		token: token,
	}
	g := e.Group("/tokens")
	g.POST("", h.mint, authMiddleware.Auth())
	g.GET("", h.list)
	g.GET("/:tokenId", h.get)
	g.GET("/:tokenId/owner", h.ownerOf)
	g.POST("/:tokenId/transfer", h.transfer, authMiddleware.Auth())
}

// mint
//
//	@Summary		Mint a token
//	@Description	Registers a new token under the caller. The attached deposit
//	@Description	must equal the fixed mint fee.
//	@Tags			tokens
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.mint.payload	true	"params"
//	@Success		201		{object}	token.Token
//	@Failure		400
//	@Failure		409
//	@Failure		500
//	@Router			/tokens [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Account)

	type payload struct {
		TokenId         domain.TokenId  `json:"tokenId" validate:"required"`
		Metadata        *token.Metadata `json:"metadata"`
		AttachedDeposit domain.Amount   `json:"attachedDeposit"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.token.Mint(ctx, caller, p.AttachedDeposit, p.TokenId, p.Metadata)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner  *domain.Account `query:"owner"`
		Offset int32           `query:"offset"`
		Limit  int32           `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []token.FindAllOptionsFunc{
		token.WithPagination(p.Offset, p.Limit),
	}

	if p.Owner != nil {
		opts = append(opts, token.WithOwner(*p.Owner))
	}

	if res, err := h.token.FindAll(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	tokenId := domain.TokenId(c.Param("tokenId"))

	res, err := h.token.Get(ctx, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) ownerOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	tokenId := domain.TokenId(c.Param("tokenId"))

	owner, err := h.token.OwnerOf(ctx, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Owner domain.Account `json:"owner"`
	}{
		Owner: owner,
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// transfer
//
//	@Summary		Transfer a token
//	@Description	Moves the token to another account. Only the current owner
//	@Description	may transfer, and escrowed tokens cannot move.
//	@Tags			tokens
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			tokenId	path	string					true	"token id"
//	@Param			params	body	http.transfer.payload	true	"params"
//	@Success		204
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Failure		500
//	@Router			/tokens/{tokenId}/transfer [post]
func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Account)

	type payload struct {
		TokenId domain.TokenId `param:"tokenId"`
		To      domain.Account `json:"to" validate:"required"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if !p.To.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAccount)
	}

	if err := h.token.Transfer(ctx, p.TokenId, caller, p.To); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusNoContent, nil)
}
