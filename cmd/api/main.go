package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/pyme-analytics-api/infrastructure/spreadsheet"
	"github.com/vfg2006/pyme-analytics-api/internal/api"
	"github.com/vfg2006/pyme-analytics-api/internal/config"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/forecasting"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/simulating"
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

	// O pipeline é todo sem estado: validação -> derivação -> projeção,
	// composto pelo serviço de relatórios
	validator := ingesting.NewService()
	analyzer := analyzing.NewService()
	forecaster := forecasting.NewService()
	reportService := reporting.NewService(validator, analyzer, forecaster)

	simulatorService := simulating.NewService(cfg)

	parser := spreadsheet.NewService(cfg)

	server, err := api.New(
		cfg,
		parser,
		reportService,
		simulatorService,
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
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
