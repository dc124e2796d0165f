package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/myprintpt/catalog-api/infrastructure/database/postgres"
	"github.com/myprintpt/catalog-api/infrastructure/repository"
	"github.com/myprintpt/catalog-api/internal/api"
	"github.com/myprintpt/catalog-api/internal/config"
	"github.com/myprintpt/catalog-api/internal/scheduler"
	"github.com/myprintpt/catalog-api/internal/usecases/authenticating"
	"github.com/myprintpt/catalog-api/internal/usecases/catalog"
	"github.com/myprintpt/catalog-api/internal/usecases/pricing"
	"github.com/myprintpt/catalog-api/internal/usecases/product"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	configRepo := repository.NewConfiguracaoRepository(pgConn)
	unidadeRepo := repository.NewUnidadeRepository(pgConn)
	categoriaRepo := repository.NewCategoriaRepository(pgConn)
	produtoRepo := repository.NewProdutoRepository(pgConn)
	extraRepo := repository.NewExtraRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	pricingService := pricing.NewService(configRepo)
	catalogService := catalog.NewService(unidadeRepo, categoriaRepo)
	productService := product.NewService(produtoRepo, extraRepo, categoriaRepo, unidadeRepo, configRepo)

	catalogAuditService := scheduler.NewCatalogAuditService(produtoRepo, extraRepo, cfg)

	if err := catalogAuditService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de auditoria do catálogo")
	} else {
		logrus.Info("Agendador de auditoria do catálogo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pricingService,
		catalogService,
		productService,
		authenticator,
		catalogAuditService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
