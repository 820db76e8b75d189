package contentcenter

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kart-io/logger"

	"github.com/kart-io/content-center/internal/content-center/biz"
	"github.com/kart-io/content-center/internal/content-center/handler"
	"github.com/kart-io/content-center/internal/content-center/router"
	"github.com/kart-io/content-center/internal/content-center/store"
	"github.com/kart-io/content-center/internal/model"
	"github.com/kart-io/content-center/pkg/app"
	"github.com/kart-io/content-center/pkg/auth/tokenstore"
	"github.com/kart-io/content-center/pkg/component/sqlite"
	authopts "github.com/kart-io/content-center/pkg/options/auth"
)

const (
	appName        = "content-center"
	appDescription = `Content Center Service

The content management backend for the admin client.

This server provides:
  - Session token issuance and validation
  - Article management with filtering and pagination
  - Channel reference data and image uploads`
)

// NewApp creates a new application instance.
func NewApp() *app.App {
	opts := NewOptions()

	return app.NewApp(
		app.WithName(appName),
		app.WithDescription(appDescription),
		app.WithOptions(opts),
		app.WithRunFunc(func() error {
			return Run(opts)
		}),
		app.WithWatchConfig(func() {
			// Log options are the only block safe to apply on a live
			// process; everything else needs a restart.
			if err := opts.Log.Init(); err != nil {
				logger.Errorw("failed to reapply log options", "error", err)
			}
		}),
	)
}

// Run runs the content-center service with the given options.
func Run(opts *Options) error {
	// 1. Initialize logging.
	opts.Log.AddInitialField("service.name", appName)
	opts.Log.AddInitialField("service.version", app.GetVersion())
	if err := opts.Log.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("Starting content-center service...")

	// 2. Initialize the SQLite datastore and migrate the schema.
	sqliteClient, err := sqlite.New(opts.SQLite)
	if err != nil {
		return fmt.Errorf("failed to initialize sqlite: %w", err)
	}

	storeFactory, err := store.NewFactory(sqliteClient)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer storeFactory.Close()
	logger.Info("Store layer initialized")

	// 3. Load the seed data and provision the token store.
	seed, err := LoadSeed(opts.SeedFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := applySeed(ctx, storeFactory, seed); err != nil {
		return fmt.Errorf("failed to apply seed data: %w", err)
	}

	tokens, err := newTokenStore(ctx, opts, seed.Credentials)
	if err != nil {
		return fmt.Errorf("failed to initialize token store: %w", err)
	}
	defer tokens.Close()
	logger.Infow("Token store initialized",
		"backend", opts.Auth.Backend,
		"credentials", len(seed.Credentials),
	)

	// 4. Initialize the biz layer.
	authService := biz.NewAuthService(tokens)
	articleService := biz.NewArticleService(storeFactory)
	channelService := biz.NewChannelService(storeFactory)
	userService := biz.NewUserService(storeFactory, seed.User.ID)

	// 5. Initialize the handler layer.
	uploadHandler, err := handler.NewUploadHandler(opts.Upload)
	if err != nil {
		return fmt.Errorf("failed to initialize upload handler: %w", err)
	}

	engine := router.New(&router.Config{
		Mode:           opts.HTTP.Mode,
		RequestTimeout: opts.HTTP.RequestTimeout,
		Tokens:         tokens,
		Auth:           handler.NewAuthHandler(authService),
		Article:        handler.NewArticleHandler(articleService),
		Channel:        handler.NewChannelHandler(channelService),
		User:           handler.NewUserHandler(userService),
		Upload:         uploadHandler,
		StaticFS:       opts.Upload.Dir,
	})

	// 6. Serve until shutdown.
	return serve(engine, opts.HTTP)
}

func applySeed(ctx context.Context, factory store.Factory, seed *Seed) error {
	if err := factory.Users().Save(ctx, &seed.User); err != nil {
		return err
	}

	channels := make([]*model.Channel, 0, len(seed.Channels))
	for i := range seed.Channels {
		channels = append(channels, &seed.Channels[i])
	}
	return factory.Channels().Save(ctx, channels)
}

func newTokenStore(ctx context.Context, opts *Options, creds []tokenstore.Credential) (tokenstore.Store, error) {
	switch opts.Auth.Backend {
	case authopts.BackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:         opts.Redis.Addr(),
			Password:     opts.Redis.Password,
			DB:           opts.Redis.Database,
			MaxRetries:   opts.Redis.MaxRetries,
			PoolSize:     opts.Redis.PoolSize,
			DialTimeout:  opts.Redis.DialTimeout,
			ReadTimeout:  opts.Redis.ReadTimeout,
			WriteTimeout: opts.Redis.WriteTimeout,
		})
		return tokenstore.NewRedisStore(ctx, client, creds,
			tokenstore.WithRedisTTL(opts.Auth.TokenTTL),
		)
	default:
		return tokenstore.NewMemoryStore(creds,
			tokenstore.WithTTL(opts.Auth.TokenTTL),
		), nil
	}
}
