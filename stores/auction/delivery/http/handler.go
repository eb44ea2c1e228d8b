package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/delivery"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
	authMiddleware "github.com/bidhaus/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, auction auction.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		auction: auction,
	}
	g := e.Group("/auctions")
	g.POST("", h.create, authMiddleware.Auth())
	g.GET("", h.list)
	g.GET("/:auctionId", h.get)
	g.POST("/:auctionId/bids", h.bid, authMiddleware.Auth())
	g.POST("/:auctionId/claim-asset", h.claimAsset, authMiddleware.Auth())
	g.POST("/:auctionId/claim-proceeds", h.claimProceeds, authMiddleware.Auth())
	g.POST("/:auctionId/claim-back", h.claimBack, authMiddleware.Auth())
}

// create
//
//	@Summary		Open an auction
//	@Description	Escrows the token and opens the bidding window. The attached
//	@Description	deposit must equal the fixed create-auction fee.
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.create.payload	true	"params"
//	@Success		201		{object}	auction.Auction
//	@Failure		400
//	@Failure		409
//	@Failure		500
//	@Router			/auctions [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Account)

	type payload struct {
		TokenId         domain.TokenId `json:"tokenId" validate:"required"`
		StartPrice      domain.Amount  `json:"startPrice"`
		DurationSec     int64          `json:"durationSec" validate:"required,gt=0"`
		AttachedDeposit domain.Amount  `json:"attachedDeposit"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.Create(ctx, caller, p.AttachedDeposit, p.TokenId, p.StartPrice, time.Duration(p.DurationSec)*time.Second)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// list
//
//	@Summary		List auctions
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Param			owner	query		string	false	"filter by auction owner"
//	@Param			winner	query		string	false	"filter by current winner"
//	@Param			tokenId	query		string	false	"filter by escrowed token"
//	@Param			ended	query		bool	false	"only ended / only running auctions"
//	@Param			offset	query		int		false	"paging offset"
//	@Param			limit	query		int		false	"paging size"
//	@Success		200		{array}		auction.Auction
//	@Failure		400
//	@Failure		500
//	@Router			/auctions [get]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner   *domain.Account `query:"owner"`
		Winner  *domain.Account `query:"winner"`
		TokenId *domain.TokenId `query:"tokenId"`
		Ended   *bool           `query:"ended"`
		Offset  int32           `query:"offset"`
		Limit   int32           `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []auction.FindAllOptionsFunc{
		auction.WithPagination(p.Offset, p.Limit),
	}

	if p.Owner != nil {
		opts = append(opts, auction.WithOwner(*p.Owner))
	}

	if p.Winner != nil {
		opts = append(opts, auction.WithWinner(*p.Winner))
	}

	if p.TokenId != nil {
		opts = append(opts, auction.WithTokenId(*p.TokenId))
	}

	if p.Ended != nil {
		if *p.Ended {
			opts = append(opts, auction.WithEndTimeBefore(time.Now()))
		} else {
			opts = append(opts, auction.WithEndTimeAfter(time.Now()))
		}
	}

	if res, err := h.auction.FindAll(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		AuctionId domain.AuctionId `param:"auctionId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.Get(ctx, p.AuctionId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// bid
//
//	@Summary		Place a bid
//	@Description	The attached deposit is the bid and must strictly exceed the
//	@Description	current price. The displaced bidder is refunded their bid
//	@Description	minus the enroll fee.
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			auctionId	path	int				true	"auction id"
//	@Param			params		body	http.bid.payload	true	"params"
//	@Success		204
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/auctions/{auctionId}/bids [post]
func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Account)

	type payload struct {
		AuctionId       domain.AuctionId `param:"auctionId"`
		AttachedDeposit domain.Amount    `json:"attachedDeposit" validate:"required"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.auction.Bid(ctx, caller, p.AttachedDeposit, p.AuctionId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusNoContent, nil)
}

func (h *handler) claimAsset(c echo.Context) error {
	return h.claim(c, h.auction.ClaimAsset)
}

func (h *handler) claimProceeds(c echo.Context) error {
	return h.claim(c, h.auction.ClaimProceeds)
}

func (h *handler) claimBack(c echo.Context) error {
	return h.claim(c, h.auction.ClaimBack)
}

func (h *handler) claim(c echo.Context, op func(ctx.Ctx, domain.Account, domain.AuctionId) error) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Account)

	type params struct {
		AuctionId domain.AuctionId `param:"auctionId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := op(ctx, caller, p.AuctionId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusNoContent, nil)
}
