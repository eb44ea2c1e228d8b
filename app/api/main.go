package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/database/mongoclient"
	"github.com/bidhaus/goapi/base/database/redisclient"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/base/metrics"
	pricefomatter "github.com/bidhaus/goapi/base/price_fomatter"
	bValidator "github.com/bidhaus/goapi/base/validator"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/auction"
	"github.com/bidhaus/goapi/domain/keys"
	mmiddleware "github.com/bidhaus/goapi/middleware"
	"github.com/bidhaus/goapi/service/cache"
	"github.com/bidhaus/goapi/service/cache/provider"
	"github.com/bidhaus/goapi/service/cache/provider/compound"
	"github.com/bidhaus/goapi/service/cache/provider/primitive"
	redisCache "github.com/bidhaus/goapi/service/cache/provider/redis"
	"github.com/bidhaus/goapi/service/query"
	"github.com/bidhaus/goapi/service/redis"
	auction_delivery "github.com/bidhaus/goapi/stores/auction/delivery/http"
	auction_repository "github.com/bidhaus/goapi/stores/auction/repository"
	auction_usecase "github.com/bidhaus/goapi/stores/auction/usecase"
	auth_delivery "github.com/bidhaus/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/bidhaus/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/bidhaus/goapi/stores/auth/usecase"
	hc_delivery "github.com/bidhaus/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/bidhaus/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/bidhaus/goapi/stores/healthcheck/usecase"
	payment_delivery "github.com/bidhaus/goapi/stores/payment/delivery/http"
	payment_repository "github.com/bidhaus/goapi/stores/payment/repository"
	payment_usecase "github.com/bidhaus/goapi/stores/payment/usecase"
	token_delivery "github.com/bidhaus/goapi/stores/token/delivery/http"
	token_repository "github.com/bidhaus/goapi/stores/token/repository"
	token_usecase "github.com/bidhaus/goapi/stores/token/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Bidhaus Auction API
//	@version		1.0
//	@description	API Document for the Bidhaus auction house.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// provision unique indexes the repositories rely on for duplicate-key
	// conflict detection
	for _, index := range []struct {
		table domain.Table
		key   string
	}{
		{domain.TableEscrows, "tokenId"},
		{domain.TableTokens, "tokenId"},
		{domain.TableAuctions, "auctionId"},
		{domain.TableLedgerAccounts, "account"},
	} {
		if err := q.EnsureIndex(context, index.table, bson.D{{Key: index.key, Value: 1}}, true); err != nil {
			log.Log().WithField("err", err).Panic("failed to ensure index")
		}
	}

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisService := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	auctionCache := cache.New(cache.ServiceConfig{
		Ttl: viper.GetDuration("cache.auctionTtl"),
		Pfx: keys.PfxAuction,
		Cache: compound.NewCompound([]provider.Provider{
			primitive.NewPrimitive(keys.PfxAuction, 16),
			redisCache.NewRedis(redisService),
		}),
	})

	fees := auction.FeeSchedule{
		Mint:          domain.Amount(viper.GetUint64("fees.mint")),
		CreateAuction: domain.Amount(viper.GetUint64("fees.createAuction")),
		Enroll:        domain.Amount(viper.GetUint64("fees.enroll")),
	}
	contractAccount := domain.Account(viper.GetString("accounts.contract"))
	treasuryAccount := domain.Account(viper.GetString("accounts.treasury"))
	adminAccounts := viper.GetStringSlice("accounts.admins")

	priceFormatter := pricefomatter.New(int32(viper.GetInt("currency.decimals")))

	hcRepo := hc_repo.New(mongoClient, redisService)
	paymentRepo := payment_repository.NewPaymentRepo(q)
	tokenRepo := token_repository.NewTokenRepo(q)
	auctionRepo := auction_repository.NewAuctionRepo(q)

	hc := hc_usecase.New(hcRepo)
	ledger := payment_usecase.New(&payment_usecase.PaymentUseCaseCfg{
		Q:              q,
		PaymentRepo:    paymentRepo,
		PriceFormatter: priceFormatter,
	})
	token := token_usecase.New(&token_usecase.TokenUseCaseCfg{
		Q:         q,
		TokenRepo: tokenRepo,
		Ledger:    ledger,
		Fees:      fees,
		Treasury:  treasuryAccount,
	})
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Q:           q,
		AuctionRepo: auctionRepo,
		TokenUC:     token,
		Ledger:      ledger,
		Cache:       auctionCache,
		Fees:        fees,
		Contract:    contractAccount,
		Treasury:    treasuryAccount,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))

	authMiddleware := auth_middleware.New(auth, adminAccounts)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	token_delivery.New(e, token, authMiddleware)
	payment_delivery.New(e, ledger, authMiddleware)
	auction_delivery.New(e, auctionUC, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
