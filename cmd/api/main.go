package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adpilot/fb-campaign-api/infrastructure/database/postgres"
	"github.com/adpilot/fb-campaign-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpilot/fb-campaign-api/infrastructure/repository"
	"github.com/adpilot/fb-campaign-api/internal/api"
	"github.com/adpilot/fb-campaign-api/internal/config"
	"github.com/adpilot/fb-campaign-api/internal/scheduler"
	"github.com/adpilot/fb-campaign-api/internal/session"
	"github.com/adpilot/fb-campaign-api/internal/usecases/advertising"
	"github.com/adpilot/fb-campaign-api/internal/usecases/auditing"
	"github.com/adpilot/fb-campaign-api/internal/usecases/authenticating"
	"github.com/adpilot/fb-campaign-api/internal/usecases/publishing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A trilha de auditoria é opcional: sem ela a aplicação roda sem banco
	var auditRepo repository.OperationAuditRepository
	if cfg.AuditTrail.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		auditRepo = repository.NewOperationAuditRepository(pgConn)

		auditPruneService := scheduler.NewAuditPruneService(auditRepo, cfg)
		if err := auditPruneService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza da auditoria")
		} else {
			logrus.Info("Agendador de limpeza da auditoria iniciado com sucesso")
		}
	}

	auditRecorder := auditing.NewRecorder(auditRepo)

	metaClient := metaclient.NewClient(cfg)
	sessionCodec := session.NewCodec(cfg.Session)

	authenticator := authenticating.NewService(cfg, metaClient)
	publisher := publishing.NewService(metaClient, auditRecorder)
	advertiser := advertising.NewService(metaClient, auditRecorder)

	server, err := api.New(
		cfg,
		authenticator,
		publisher,
		advertiser,
		sessionCodec,
		auditRepo,
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

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
