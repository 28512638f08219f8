package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mikiasgoitom/PetLikes/internal/domain/contract"
	redisclient "github.com/mikiasgoitom/PetLikes/internal/infrastructure/cache"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/config"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/database"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/logger"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/repository/postgres"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/store"
	"github.com/mikiasgoitom/PetLikes/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/PetLikes/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

// app holds what every command needs: config, logger, the three stores and
// the like use case built on them.
type app struct {
	cfg    *config.Config
	log    usecasecontract.IAppLogger
	stores *stores
	likes  *usecase.LikeUsecase
}

type stores struct {
	pets    contract.IPetRepository
	posts   contract.IPostRepository
	likes   contract.ILikeRepository
	migrate func(ctx context.Context, withForeign bool) error
	closers []func()
}

func (a *app) Close() {
	for i := len(a.stores.closers) - 1; i >= 0; i-- {
		a.stores.closers[i]()
	}
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	appLogger := logger.NewSlogLogger(cfg.LogLevel, cfg.LogFormat)

	st, err := openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	notifier := external_services.NewWebhookNotifier(cfg.GetWebhookURL(), cfg.GetWebhookTimeout())
	likeUsecase := usecase.NewLikeUsecase(st.pets, st.posts, st.likes, notifier, uuidgen.NewGenerator(), appLogger, cfg)
	a := &app{cfg: cfg, log: appLogger, stores: st, likes: likeUsecase}

	// reconcile invalidates the keys it repairs, so every command gets the cache
	countCache, err := openLikeCountCache(ctx, cfg, appLogger, st)
	if err != nil {
		a.Close()
		return nil, err
	}
	likeUsecase.SetLikeCountCache(countCache)
	return a, nil
}

// openLikeCountCache returns the Redis counter cache when REDIS_URL is set and
// an in-process one otherwise.
func openLikeCountCache(ctx context.Context, cfg *config.Config, log usecasecontract.IAppLogger, st *stores) (contract.ILikeCountCache, error) {
	if cfg.RedisURL == "" {
		return store.NewMemoryLikeCountCache(cfg.GetLikesCacheTTL(), 10000), nil
	}
	rdb, err := redisclient.NewRedisFromURL(ctx, cfg.RedisURL, log)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	st.closers = append(st.closers, func() { redisclient.Close(rdb) })
	return store.NewLikeCountCacheStore(rdb, cfg.GetLikesCacheTTL()), nil
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		return openPostgresStores(cfg)
	case config.DriverMongoDB:
		return openMongoStores(cfg)
	default:
		pets, posts, likes := memory.NewPetRepo(), memory.NewPostRepo(), memory.NewLikeRepo()
		return &stores{
			pets: pets, posts: posts, likes: likes,
			migrate: func(context.Context, bool) error { return nil },
		}, nil
	}
}

func openPostgresStores(cfg *config.Config) (*stores, error) {
	st := &stores{}
	open := func(name string) (*sql.DB, error) {
		db, err := database.OpenPostgres(cfg.PostgresDSN(name))
		if err != nil {
			return nil, fmt.Errorf("database %s: %w", name, err)
		}
		st.closers = append(st.closers, func() { _ = db.Close() })
		return db, nil
	}
	closeAll := func() {
		for _, c := range st.closers {
			c()
		}
	}

	petDB, err := open(cfg.PetDBName)
	if err != nil {
		closeAll()
		return nil, err
	}
	postDB, err := open(cfg.PostDBName)
	if err != nil {
		closeAll()
		return nil, err
	}
	likeDB, err := open(cfg.ReactionsDBName)
	if err != nil {
		closeAll()
		return nil, err
	}

	st.pets = postgres.NewPetRepo(petDB)
	st.posts = postgres.NewPostRepo(postDB)
	st.likes = postgres.NewLikeRepo(likeDB)
	st.migrate = func(ctx context.Context, withForeign bool) error {
		if err := postgres.MigrateLikes(ctx, likeDB); err != nil {
			return err
		}
		if !withForeign {
			return nil
		}
		if err := postgres.MigratePets(ctx, petDB); err != nil {
			return err
		}
		return postgres.MigratePosts(ctx, postDB)
	}
	return st, nil
}

func openMongoStores(cfg *config.Config) (*stores, error) {
	client, err := database.NewMongoDBClient(cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	likeRepo := mongodb.NewLikeRepository(client.Client.Database(cfg.ReactionsDBName))
	return &stores{
		pets:  mongodb.NewPetRepository(client.Client.Database(cfg.PetDBName)),
		posts: mongodb.NewPostRepository(client.Client.Database(cfg.PostDBName)),
		likes: likeRepo,
		// collections are created on first write; only the index matters
		migrate: func(ctx context.Context, _ bool) error { return likeRepo.EnsureIndexes(ctx) },
		closers: []func(){client.Disconnect},
	}, nil
}
