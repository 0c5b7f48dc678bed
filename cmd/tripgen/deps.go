package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"tripgen/internal/ai"
	"tripgen/internal/config"
	"tripgen/internal/infra"
	"tripgen/internal/modules/trip"
)

// newProvider builds the configured completion provider. The returned close
// func is never nil.
func newProvider(ctx context.Context, c config.LLMConfig) (ai.Provider, func(), error) {
	switch c.Provider {
	case config.ProviderGemini:
		p, err := ai.NewGeminiProvider(ctx, c.APIKey, c.Model)
		if err != nil {
			return nil, nil, err
		}
		return p, func() { _ = p.Close() }, nil
	case config.ProviderOpenRouter:
		return ai.NewOpenRouterProvider(c.BaseURL, c.APIKey, c.Model, &http.Client{}), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider %q", c.Provider)
	}
}

// openStore connects the configured trip backend and prepares its schema.
func openStore(ctx context.Context, c config.Config, log *zap.Logger) (trip.Store, func(), error) {
	switch c.Store.Backend {
	case config.StoreMongo:
		client, err := infra.NewMongo(ctx, c.Mongo.URI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		db := client.Database(c.Mongo.Database)
		if err := trip.EnsureMongoSchema(ctx, db); err != nil {
			closeFn()
			return nil, nil, err
		}
		log.Info("trip store ready", zap.String("backend", c.Store.Backend), zap.String("database", c.Mongo.Database))
		return trip.NewMongoStore(db), closeFn, nil

	case config.StorePostgres:
		if err := infra.MigratePostgres(c.DB.DSN); err != nil {
			return nil, nil, err
		}
		pool, err := infra.NewDB(ctx, c.DB.DSN)
		if err != nil {
			return nil, nil, err
		}
		log.Info("trip store ready", zap.String("backend", c.Store.Backend))
		return trip.NewPostgresStore(pool), pool.Close, nil

	case config.StoreRedis:
		rdb, err := infra.NewRedis(ctx, c.Redis.Addr)
		if err != nil {
			return nil, nil, err
		}
		log.Info("trip store ready", zap.String("backend", c.Store.Backend), zap.String("addr", c.Redis.Addr))
		return trip.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil

	case config.StoreMemory:
		log.Warn("trip store is in-memory; saved trips are lost on restart")
		return trip.NewMemoryStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
}
