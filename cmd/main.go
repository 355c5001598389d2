package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/config"
	"github.com/brandonbryant12/content-studio-sub011/internal/delivery"
	"github.com/brandonbryant12/content-studio-sub011/internal/delivery/ws"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain/stations"
	"github.com/brandonbryant12/content-studio-sub011/internal/infra"
)

func main() {
	// LOGGER
	zcore, _ := zap.NewProduction()
	defer func() { _ = zcore.Sync() }()
	sugar := zcore.Sugar()
	zl := logger.NewZapLogger(sugar)

	// CONFIG
	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalw("config load failed", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// POSTGRES
	if err := infra.RunMigrations(cfg.Database.URL); err != nil {
		sugar.Fatalw("migrations failed", "err", err)
	}
	pool, err := infra.NewPgxPool(ctx, cfg.Database.URL)
	if err != nil {
		sugar.Fatalw("postgres connect failed", "err", err)
	}
	defer pool.Close()

	// STORAGE
	blobs, err := infra.NewLocalBlobStore(cfg.Storage.DataDir)
	if err != nil {
		sugar.Fatalw("blob store init failed", "err", err)
	}

	// REPOS
	userRepo := infra.NewPostgresUserRepo(pool)
	docRepo := infra.NewPostgresDocumentRepo(pool)
	brandRepo := infra.NewPostgresBrandRepo(pool)
	segmentRepo := infra.NewPostgresAudienceRepo(pool)
	personaRepo := infra.NewPostgresPersonaRepo(pool)
	podcastRepo := infra.NewPostgresPodcastRepo(pool)
	voiceoverRepo := infra.NewPostgresVoiceoverRepo(pool)
	infographicRepo := infra.NewPostgresInfographicRepo(pool)
	collabRepo := infra.NewPostgresCollaboratorRepo(pool)
	jobRepo := infra.NewPostgresJobRepo(pool)

	// PROVIDERS
	chat := infra.NewOpenRouterClient(cfg.Providers.OpenRouterKey, cfg.Providers.OpenRouterModel, sugar)
	tts := infra.NewTTSClient(cfg.Providers.TTSURL, cfg.Providers.TTSKey, cfg.Providers.TTSModel, sugar)
	img := infra.NewImageGenClient(cfg.Providers.ImageURL, cfg.Providers.ImageKey, cfg.Providers.ImageModel, sugar)

	// STATIONS
	s1 := stations.NewS1ComposeBrief()
	s2 := stations.NewS2WriteScript(chat, sugar)
	s3 := stations.NewS3Synthesize(tts, cfg.Generation.SynthesisWorkers, sugar)
	s4 := stations.NewS4AssembleAudio(blobs, cfg.Generation.LineGap)
	s5 := stations.NewS5ArtPrompt(chat)
	s6 := stations.NewS6RenderImage(img, blobs)

	// SERVICES
	runner := domain.NewJobRunner(jobRepo, cfg.Generation.JobDeadline, sugar)
	authService := domain.NewAuthService(userRepo, userRepo, cfg.Auth.SessionTTL)
	docService := domain.NewDocumentService(docRepo, blobs)
	brandService := domain.NewBrandService(brandRepo)
	audienceService := domain.NewAudienceService(segmentRepo, personaRepo)
	jobService := domain.NewJobService(jobRepo)
	shareService := domain.NewShareService(collabRepo, userRepo, podcastRepo, voiceoverRepo, infographicRepo)

	podcastService := domain.NewPodcastService(domain.PodcastServiceDeps{
		Podcasts: podcastRepo,
		Docs:     docRepo,
		Brands:   brandRepo,
		Segments: segmentRepo,
		Personas: personaRepo,
		Collabs:  collabRepo,
		Blobs:    blobs,
		Runner:   runner,
		Brief:    s1, Script: s2, Synthesize: s3, Assemble: s4,
		Log: sugar,
	})
	voiceoverService := domain.NewVoiceoverService(domain.VoiceoverServiceDeps{
		Voiceovers: voiceoverRepo,
		Docs:       docRepo,
		Brands:     brandRepo,
		Personas:   personaRepo,
		Collabs:    collabRepo,
		Blobs:      blobs,
		Runner:     runner,
		Brief:      s1, Script: s2, Synthesize: s3, Assemble: s4,
		Log: sugar,
	})
	infographicService := domain.NewInfographicService(domain.InfographicServiceDeps{
		Infographics: infographicRepo,
		Docs:         docRepo,
		Brands:       brandRepo,
		Collabs:      collabRepo,
		Blobs:        blobs,
		Runner:       runner,
		Brief:        s1, ArtPrompt: s5, Render: s6,
		Log: sugar,
	})

	// WS HUB: job progress events fan out to the owner's room
	hub := ws.NewHub(sugar)
	go ws.Pump(hub, runner.Events(), sugar)

	// JANITOR
	janitor := domain.NewJanitor(userRepo, jobRepo, podcastRepo, voiceoverRepo, infographicRepo, cfg.Generation.JobDeadline, sugar)
	if err := janitor.Start(); err != nil {
		sugar.Fatalw("janitor start failed", "err", err)
	}
	defer janitor.Stop()

	// METRICS
	metrics := delivery.NewMetrics(prometheus.DefaultRegisterer)

	// ROUTER
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", delivery.SessionHeader},
		AllowCredentials: true,
	}))
	r.Use(metrics.Middleware)

	handlers := delivery.Handlers{
		Auth:         delivery.NewAuthHandler(authService, cfg.Auth.CookieSecure, zl),
		Documents:    delivery.NewDocumentHandler(docService, zl),
		Brands:       delivery.NewBrandHandler(brandService, zl),
		Audience:     delivery.NewAudienceHandler(audienceService, zl),
		Podcasts:     delivery.NewPodcastHandler(podcastService, blobs, zl),
		Voiceovers:   delivery.NewVoiceoverHandler(voiceoverService, blobs, zl),
		Infographics: delivery.NewInfographicHandler(infographicService, blobs, zl),
		Shares:       delivery.NewShareHandler(shareService, zl),
		Jobs:         delivery.NewJobHandler(jobService, zl),
	}
	delivery.RegisterRoutes(r, handlers, authService, zl)

	r.Get("/ws", ws.Handler(hub, authService, sugar))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		sugar.Infow("server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw("server crashed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	sugar.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("server shutdown failed", "err", err)
	}

	// let in-flight generations write their final state
	runner.Wait()
	sugar.Infow("bye")
}
