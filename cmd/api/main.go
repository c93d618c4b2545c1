package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"jasaku/internal/config"
	"jasaku/internal/db"
	apihttp "jasaku/internal/http"
	"jasaku/internal/repository"
	"jasaku/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	loc, err := time.LoadLocation(cfg.ChatTimezone)
	if err != nil {
		logger.Warn("invalid chat timezone, falling back to UTC", zap.String("tz", cfg.ChatTimezone), zap.Error(err))
		loc = time.UTC
	}

	messageRepo := repository.NewPgMessageRepository(pool)
	walletRepo := repository.NewPgWalletRepository(pool)
	providerRepo := repository.NewPgProviderRepository(pool)

	var (
		sendLimiter service.SendRateLimiter
		grantStore  service.RevealGrantStore
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			sendLimiter = service.NewRedisSendRateLimiter(redisClient, time.Duration(cfg.SendRateWindowSeconds)*time.Second, cfg.SendRateMax)
			grantStore = service.NewRedisRevealGrantStore(redisClient)
		}
		cancel()
	}
	if grantStore == nil {
		grantStore = service.NewMemoryRevealGrantStore()
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	chatSvc := service.NewChatService(messageRepo, sendLimiter, loc)
	walletSvc := service.NewWalletService(walletRepo, providerRepo, grantStore, cfg.ContactFee, time.Duration(cfg.RevealGrantTTLMinutes)*time.Minute)

	chatHandler := apihttp.NewChatHandler(logger, chatSvc)
	walletHandler := apihttp.NewWalletHandler(logger, walletSvc)
	router := apihttp.NewRouter(logger, jwtSvc, chatHandler, walletHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
