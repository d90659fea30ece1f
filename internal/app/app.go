package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/bookstore-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/bookstore-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/internal/infrastructure/mail"
	s3Repo "github.com/DRSN-tech/bookstore-backend/internal/repository/minio"
	"github.com/DRSN-tech/bookstore-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/bookstore-backend/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/bookstore-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/bookstore-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/bookstore-backend/internal/usecase"
	"github.com/DRSN-tech/bookstore-backend/pkg/clients"
	"github.com/DRSN-tech/bookstore-backend/pkg/closer"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
	"github.com/DRSN-tech/bookstore-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App собирает зависимости витрины и управляет их жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(5 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	custConv := pgdbConv.NewCustomerConverterImpl()
	cartConv := pgdbConv.NewCartConverterImpl()
	itemConv := pgdbConv.NewCartItemConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	contactConv := pgdbConv.NewContactConverterImpl()
	itemCacheConv := redisConv.NewCatalogItemConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	customerRepo := pgdb.NewCustomerRepo(db.Pool, custConv)
	cartRepo := pgdb.NewCartRepo(db.Pool, cartConv)
	itemRepo := pgdb.NewCartItemRepo(db.Pool, itemConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	contactRepo := pgdb.NewContactRepo(db.Pool, contactConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, itemCacheConv, cfg.Redis, log)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	notifier, err := mail.NewNotifier(log, cfg.Mail)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := notifier.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return notifier.Close()
	})

	registry := usecase.NewCatalogRegistry()
	registry.Register(domain.CatalogTypeProduct, productRepo.GetCatalogItem)

	txManager := postgres.NewTxManager(db.Pool)

	identityUC := usecase.NewIdentityUC(customerRepo)
	cartUC := usecase.NewCartUC(cartRepo, itemRepo, registry, txManager, log)
	orderUC := usecase.NewOrderUC(orderRepo, cartRepo, cartUC, txManager, notifier, log)
	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, cacheRepo, imageRepo, registry, log)
	contactUC := usecase.NewContactUC(contactRepo, notifier, cfg.Mail.AdminAddr, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(identityUC, cartUC, orderUC, catalogUC, contactUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки либо
// фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource shutdown: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
