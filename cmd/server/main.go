package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/preview"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// export history is optional
	pool, err := infra.NewExportsPool(rootCtx, cfg.ExportsDatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("exports DB not available")
		pool = nil
	}
	if pool != nil {
		defer pool.Close()
		if err := migration.RunMigrations(rootCtx, pool, log.Logger); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
	}
	exportsRepo := repo.NewExportsRepo(pool)

	var store usecase.ArtifactStore
	if cfg.Storage.S3.Enabled() {
		s3Store, err := infra.NewS3Store(rootCtx, cfg.Storage.S3.StoreConfig())
		if err != nil {
			log.Fatal().Err(err).Msg("s3 storage init failed")
		}
		store = s3Store
		log.Info().Str("bucket", cfg.Storage.S3.Bucket).Msg("storing exports in bucket")
	} else {
		localStore, err := infra.NewLocalStore(cfg.Storage.Dir)
		if err != nil {
			log.Fatal().Err(err).Msg("local storage init failed")
		}
		store = localStore
		log.Info().Str("dir", cfg.Storage.Dir).Msg("storing exports on disk")
	}

	document, err := preview.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("preview renderer init failed")
	}

	sessions := repo.NewSessionsMemory()
	editor := usecase.NewEditor(sessions, cfg.DefaultLanguage, log.Logger)
	exporter := usecase.NewExporter(usecase.ExporterDeps{
		Sessions: sessions,
		Document: document,
		Renderer: infra.NewChromedpRenderer(cfg.Chrome.Path, cfg.Chrome.Timeout),
		Pages:    infra.PDFPageCounter{},
		Store:    store,
		Repo:     exportsRepo,
		Options:  cfg.PDFOptions(),
		Logger:   log.Logger,
	})

	h := httpadapter.NewHandler(editor, exporter, document, exportsRepo, log.Logger)
	app := httpadapter.NewApp(h, log.Logger)

	group, gctx := errgroup.WithContext(rootCtx)

	group.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("starting HTTP API")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("HTTP API stopped with error")
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down HTTP API")
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("bye")
}
