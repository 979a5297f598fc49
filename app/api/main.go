package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/database/mongoclient"
	"github.com/x-xyz/nftescrow/base/database/redisclient"
	"github.com/x-xyz/nftescrow/base/log"
	"github.com/x-xyz/nftescrow/base/metrics"
	"github.com/x-xyz/nftescrow/base/pda"
	pricefomatter "github.com/x-xyz/nftescrow/base/price_fomatter"
	bValidator "github.com/x-xyz/nftescrow/base/validator"
	"github.com/x-xyz/nftescrow/domain"
	"github.com/x-xyz/nftescrow/domain/keys"
	mmiddleware "github.com/x-xyz/nftescrow/middleware"
	"github.com/x-xyz/nftescrow/service/cache"
	"github.com/x-xyz/nftescrow/service/cache/provider/compound"
	"github.com/x-xyz/nftescrow/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/nftescrow/service/cache/provider/redis"
	"github.com/x-xyz/nftescrow/service/notifier"
	"github.com/x-xyz/nftescrow/service/query"
	"github.com/x-xyz/nftescrow/service/redis"
	auth_delivery "github.com/x-xyz/nftescrow/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/nftescrow/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/nftescrow/stores/auth/usecase"
	hc_delivery "github.com/x-xyz/nftescrow/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/nftescrow/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftescrow/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/nftescrow/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/nftescrow/stores/listing/repository"
	listing_usecase "github.com/x-xyz/nftescrow/stores/listing/usecase"
	token_delivery "github.com/x-xyz/nftescrow/stores/token/delivery/http"
	token_repository "github.com/x-xyz/nftescrow/stores/token/repository"
	token_usecase "github.com/x-xyz/nftescrow/stores/token/usecase"
	wallet_delivery "github.com/x-xyz/nftescrow/stores/wallet/delivery/http"
	wallet_repository "github.com/x-xyz/nftescrow/stores/wallet/repository"
	wallet_usecase "github.com/x-xyz/nftescrow/stores/wallet/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/nftescrow/app/api/docs"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("auth.signatureWindow", 5*time.Minute)
	viper.SetDefault("cache.listingTTL", 10*time.Minute)
	viper.SetDefault("cache.browseTTL", 30*time.Second)
	viper.SetDefault("cache.localSizeMB", 32)
	viper.SetDefault("ledger.maxAirdrop", "10")

	log.SetDebug(viper.GetBool(`debug`))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			NFT Escrow API
//	@version		1.0
//	@description	Escrow based NFT marketplace on a simulated Solana ledger.

// main
//
//	@securityDefinitions.apikey	SignerAuth
//	@in							header
//	@name						X-Signer
//	@description				signed requests also carry X-Timestamp and X-Signature, see #/auth/get_auth_signingMsgTemplate
func main() {
	defer func() { _ = log.Sync() }()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)

	var indexes []mongoclient.Index
	indexes = append(indexes, listing_repository.Indexes...)
	indexes = append(indexes, token_repository.Indexes...)
	indexes = append(indexes, wallet_repository.Indexes...)
	if err := mongoClient.EnsureIndexes(context, indexes); err != nil {
		context.WithField("err", err).Panic("mongoClient.EnsureIndexes failed")
	}
	q := query.New(mongoClient, checkIndex)

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
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	listingCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("cache.listingTTL"),
		Pfx:   keys.PfxListing,
		Cache: compound.NewCompound(primitive.NewPrimitive(keys.PfxListing, viper.GetInt("cache.localSizeMB")), redisProvider.NewRedis(redisCache)),
	})
	browseCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("cache.browseTTL"),
		Pfx:   keys.PfxListingBrowse,
		Cache: redisProvider.NewRedis(redisCache),
	})

	notify := notifier.NewNoop()
	if viper.GetBool("discord.enabled") {
		d, err := notifier.NewDiscord(notifier.DiscordConfig{
			BotKey:      viper.GetString("discord.botKey"),
			ChannelId:   viper.GetString("discord.channelId"),
			ExplorerUrl: viper.GetString("discord.explorerUrl"),
			Workers:     viper.GetInt("discord.workers"),
		})
		if err != nil {
			context.WithField("err", err).Panic("notifier.NewDiscord failed")
		}
		notify = d
	}
	defer notify.Close()

	programId := domain.Address(viper.GetString("ledger.programId"))
	deriver, err := pda.NewDeriver(programId)
	if err != nil {
		context.WithFields(log.Fields{"programId": programId, "err": err}).Panic("pda.NewDeriver failed")
	}

	maxAirdrop, err := pricefomatter.ParseSol(viper.GetString("ledger.maxAirdrop"))
	if err != nil {
		context.WithFields(log.Fields{"maxAirdrop": viper.GetString("ledger.maxAirdrop"), "err": err}).Panic("invalid ledger.maxAirdrop")
	}

	// init repositories
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := listing_repository.New(q)
	mintRepo := token_repository.NewMint(q)
	accountRepo := token_repository.NewTokenAccount(q)
	walletRepo := wallet_repository.New(q)

	// init usecases
	hc := hc_usecase.New(hcRepo)
	token := token_usecase.New(&token_usecase.TokenUseCaseCfg{
		MintRepo:    mintRepo,
		AccountRepo: accountRepo,
		Transactor:  q,
		Deriver:     deriver,
	})
	wallet := wallet_usecase.New(&wallet_usecase.WalletUseCaseCfg{
		Repo:         walletRepo,
		AllowAirdrop: viper.GetBool("ledger.allowAirdrop"),
		MaxAirdrop:   maxAirdrop,
	})
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:  listingRepo,
		MintRepo:     mintRepo,
		AccountRepo:  accountRepo,
		WalletRepo:   walletRepo,
		Transactor:   q,
		Deriver:      deriver,
		Notifier:     notify,
		ListingCache: listingCache,
		BrowseCache:  browseCache,
		Redis:        redisCache,
	})
	signatureWindow := viper.GetDuration("auth.signatureWindow")
	auth := auth_usecase.New(signatureWindow, redisCache)
	auth_middleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, signatureWindow)
	listing_delivery.New(e, listing, auth_middleware)
	token_delivery.New(e, token, auth_middleware)
	wallet_delivery.New(e, wallet)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	context.WithFields(log.Fields{"programId": deriver.ProgramId(), "address": viper.GetString("server.address")}).Info("starting server")
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
