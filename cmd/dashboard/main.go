package main

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/startup-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/startup-dashboard/infrastructure/loader"
	"github.com/vfg2006/startup-dashboard/internal/api"
	"github.com/vfg2006/startup-dashboard/internal/config"
	"github.com/vfg2006/startup-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/startup-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido %q, usando info", cfg.App.LogLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l, closer := datasetLoader(ctx, cfg)
	if closer != nil {
		defer closer.Close()
	}

	// sem dataset não há o que servir
	ds, err := l.Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o conjunto de dados")
	}

	server := api.New(cfg, analyzing.NewService(ds))
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// datasetLoader escolhe a origem dos dados conforme DATASET_SOURCE
func datasetLoader(ctx context.Context, cfg *config.Config) (loader.Loader, io.Closer) {
	if cfg.Dataset.Source != config.SourcePostgres {
		logrus.WithFields(logrus.Fields{
			"startup_data":     cfg.Dataset.StartupPath,
			"competitors_data": cfg.Dataset.CompetitorsPath,
		}).Info("Lendo conjunto de dados dos arquivos")

		return loader.NewFileLoader(cfg.Dataset.StartupPath, cfg.Dataset.CompetitorsPath), nil
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Lendo conjunto de dados do PostgreSQL")
	return loader.NewPostgresLoader(conn), conn
}
