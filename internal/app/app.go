// Package app assembles the HTTP service from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/docqa/docqa/handlers"
	"github.com/docqa/docqa/internal/completion"
	"github.com/docqa/docqa/internal/config"
	"github.com/docqa/docqa/internal/database"
	"github.com/docqa/docqa/internal/document/handler"
	"github.com/docqa/docqa/internal/document/repository"
	"github.com/docqa/docqa/internal/document/service"
	"github.com/docqa/docqa/internal/exchange"
	"github.com/docqa/docqa/internal/storage"
	"github.com/docqa/docqa/pkg/logger"
	"github.com/docqa/docqa/pkg/metrics"
	"github.com/docqa/docqa/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// App owns the router and every optional backing client.
type App struct {
	cfg    *config.Config
	engine *gin.Engine
	repo   *repository.MemoryRepo
	redis  *redis.Client
	mongo  *mongo.Client
}

// Deps lets callers (tests, the CLI) replace the completion provider.
type Deps struct {
	Completer completion.Completer
}

// New connects the optional backends named in cfg and builds the router.
// Optional backends that cannot be reached are logged and skipped.
func New(ctx context.Context, cfg *config.Config, deps Deps) (*App, error) {
	a := &App{cfg: cfg, repo: repository.NewMemoryRepo()}

	completer := deps.Completer
	model := cfg.Mistral.Model
	if completer == nil {
		mc, err := completion.NewMistralClient(completion.MistralConfig{
			APIKey:  cfg.Mistral.APIKey,
			BaseURL: cfg.Mistral.BaseURL,
			Model:   cfg.Mistral.Model,
			Timeout: cfg.Mistral.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("completion client: %w", err)
		}
		completer = mc
		model = mc.Model()
	}

	opts := []service.Option{service.WithModel(model)}
	if archive := a.buildArchive(); archive != nil {
		opts = append(opts, service.WithArchive(archive))
	}
	if rec := a.buildRecorder(ctx); rec != nil {
		opts = append(opts, service.WithRecorder(rec))
	}
	svc := service.New(a.repo, completer, opts...)

	a.engine = a.buildRouter(ctx, svc)
	return a, nil
}

func (a *App) buildArchive() storage.Archive {
	var archives storage.Multi
	if a.cfg.Upload.Dir != "" {
		d, err := storage.NewDirArchive(a.cfg.Upload.Dir)
		if err != nil {
			logger.Warnf("upload dir archive disabled: %v", err)
		} else {
			archives = append(archives, d)
			logger.Infof("archiving uploads to %s", d.Dir())
		}
	}
	if mcfg := storage.LoadMinIOConfig(); mcfg.Endpoint != "" {
		s, err := storage.NewMinIOStorage(mcfg)
		if err != nil {
			logger.Warnf("minio archive disabled: %v", err)
		} else {
			archives = append(archives, s)
			logger.Infof("archiving uploads to minio bucket %s", mcfg.Bucket)
		}
	}
	if len(archives) == 0 {
		return nil
	}
	return archives
}

func (a *App) buildRecorder(ctx context.Context) exchange.Recorder {
	if a.cfg.MongoDB.URI == "" {
		return nil
	}
	client, err := database.ConnectMongoWithRetry(ctx, a.cfg.MongoDB.URI, a.cfg.MongoDB.Timeout, 5)
	if err != nil {
		logger.Warnf("exchange log disabled: %v", err)
		return nil
	}
	rec, err := exchange.NewMongoRecorder(ctx, client.Database(a.cfg.MongoDB.Database).Collection("exchanges"))
	if err != nil {
		logger.Warnf("exchange log disabled: %v", err)
		_ = client.Disconnect(context.Background())
		return nil
	}
	a.mongo = client
	logger.Infof("recording exchanges in MongoDB database %s", a.cfg.MongoDB.Database)
	return rec
}

func (a *App) buildRouter(ctx context.Context, svc service.Service) *gin.Engine {
	if a.cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.CORS(), middleware.RequestLogger(), gin.Recovery())
	r.MaxMultipartMemory = a.cfg.Upload.MaxMemoryMB << 20

	if a.cfg.Redis.Host != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Host + ":" + a.cfg.Redis.Port,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err := a.redis.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", a.cfg.Redis.Host, a.cfg.Redis.Port, err)
			_ = a.redis.Close()
			a.redis = nil
		} else {
			logger.Infof("connected to Redis %s:%s", a.cfg.Redis.Host, a.cfg.Redis.Port)
		}
	}

	if rl := a.cfg.RateLimit; rl.Enabled {
		if rl.UseRedis && a.redis != nil {
			win := time.Duration(rl.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(a.redis, rl.RPS, rl.Burst, win))
			logger.Infof("rate limiter: redis fixed window (rps=%v burst=%d window=%s)", rl.RPS, rl.Burst, win)
		} else {
			r.Use(middleware.RateLimitMiddleware(rl.RPS, rl.Burst))
			logger.Infof("rate limiter: in-memory token bucket (rps=%v burst=%d)", rl.RPS, rl.Burst)
		}
	}

	checks := map[string]handlers.ReadinessCheck{
		"store": func() bool { return a.repo != nil },
	}
	if a.redis != nil && a.cfg.RateLimit.UseRedis {
		checks["redis"] = func() bool {
			pctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return a.redis.Ping(pctx).Err() == nil
		}
	}
	if a.mongo != nil {
		checks["mongodb"] = func() bool {
			pctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return a.mongo.Ping(pctx, nil) == nil
		}
	}

	handlers.RegisterServiceRoutes(r, checks)
	handlers.RegisterSwagger(r)
	handler.RegisterDocumentRoutes(r, svc)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler { return a.engine }

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.cfg.Addr(),
		Handler:      a.engine,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("starting document Q&A service on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		a.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Infof("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(sctx)
	a.Close()
	return err
}

// Close releases backend clients.
func (a *App) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.mongo != nil {
		_ = a.mongo.Disconnect(context.Background())
	}
}
