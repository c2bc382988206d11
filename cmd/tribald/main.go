package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tribald/internal/catalog"
	"tribald/internal/common/fsutil"
	"tribald/internal/config"
	"tribald/internal/httpapi"
	"tribald/internal/store"
	"tribald/internal/translate"
	"tribald/internal/vision"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	var (
		cfgPath     string
		addr        string
		dbPath      string
		uploadsDir  string
		ollamaHost  string
		visionModel string
		translateEP string
		maxUploadMB int
		timeoutS    int
		logLevel    string
		noCORS      bool
	)

	root := &cobra.Command{
		Use:           "tribald",
		Short:         "HTTP backend describing tribal artwork with a local vision model",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config{
				Addr:              addr,
				DBPath:            dbPath,
				UploadsDir:        uploadsDir,
				OllamaHost:        ollamaHost,
				VisionModel:       visionModel,
				TranslateEndpoint: translateEP,
				MaxUploadMB:       maxUploadMB,
				RequestTimeoutS:   timeoutS,
				CORSDisabled:      noCORS,
			}
			if cfgPath != "" {
				fileCfg, err := config.Load(cfgPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				// Flags that were left at their defaults yield to the file.
				cfg = mergeConfig(fileCfg, cfg, cmd)
			}
			return run(cfg, logLevel)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", os.Getenv("TRIBALD_CONFIG"), "Optional config file (.yaml/.json/.toml)")
	root.Flags().StringVar(&addr, "addr", envOr("TRIBALD_ADDR", ":8080"), "HTTP listen address, e.g. :8080")
	root.Flags().StringVar(&dbPath, "db", envOr("TRIBALD_DB", "~/.tribald/tribald.db"), "SQLite database path")
	root.Flags().StringVar(&uploadsDir, "uploads-dir", envOr("TRIBALD_UPLOADS_DIR", "~/.tribald/uploads"), "Directory to retain uploaded images (empty disables)")
	root.Flags().StringVar(&ollamaHost, "ollama-host", envOr("TRIBALD_OLLAMA_HOST", "http://127.0.0.1:11434"), "Base URL of the Ollama host")
	root.Flags().StringVar(&visionModel, "vision-model", envOr("TRIBALD_VISION_MODEL", "llava"), "Vision model name on the Ollama host")
	root.Flags().StringVar(&translateEP, "translate-endpoint", os.Getenv("TRIBALD_TRANSLATE_ENDPOINT"), "Override the translation endpoint (default: Google web endpoint)")
	root.Flags().IntVar(&maxUploadMB, "max-upload-mb", 10, "Maximum image upload size in MiB")
	root.Flags().IntVar(&timeoutS, "request-timeout-s", 120, "Timeout for one vision model call, seconds")
	root.Flags().StringVar(&logLevel, "log-level", envOr("TRIBALD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	root.Flags().BoolVar(&noCORS, "no-cors", false, "Disable the permissive CORS middleware")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tribald:", err)
		os.Exit(1)
	}
}

// mergeConfig overlays flag values on the file config: a flag the user set
// explicitly wins, otherwise the file value (when present) is used.
func mergeConfig(file, flags config.Config, cmd *cobra.Command) config.Config {
	out := flags
	pick := func(name string, fileVal, flagVal string) string {
		if cmd.Flags().Changed(name) || fileVal == "" {
			return flagVal
		}
		return fileVal
	}
	out.Addr = pick("addr", file.Addr, flags.Addr)
	out.DBPath = pick("db", file.DBPath, flags.DBPath)
	out.UploadsDir = pick("uploads-dir", file.UploadsDir, flags.UploadsDir)
	out.OllamaHost = pick("ollama-host", file.OllamaHost, flags.OllamaHost)
	out.VisionModel = pick("vision-model", file.VisionModel, flags.VisionModel)
	out.TranslateEndpoint = pick("translate-endpoint", file.TranslateEndpoint, flags.TranslateEndpoint)
	if !cmd.Flags().Changed("max-upload-mb") && file.MaxUploadMB > 0 {
		out.MaxUploadMB = file.MaxUploadMB
	}
	if !cmd.Flags().Changed("request-timeout-s") && file.RequestTimeoutS > 0 {
		out.RequestTimeoutS = file.RequestTimeoutS
	}
	if !cmd.Flags().Changed("no-cors") && file.CORSDisabled {
		out.CORSDisabled = true
	}
	return out
}

func run(cfg config.Config, logLevel string) error {
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).With().Timestamp().Logger()

	uploadsDir := cfg.UploadsDir
	if uploadsDir != "" {
		uploadsDir, err = fsutil.EnsureDir(uploadsDir)
		if err != nil {
			return fmt.Errorf("uploads dir: %w", err)
		}
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	timeout := time.Duration(cfg.RequestTimeoutS) * time.Second
	vm := vision.New(cfg.OllamaHost, cfg.VisionModel, timeout)
	tr := translate.NewGoogle(cfg.TranslateEndpoint, 30*time.Second)

	svc := catalog.New(vm, tr, st, uploadsDir, log)

	httpapi.SetLogger(log)
	httpapi.SetMaxUploadBytes(int64(cfg.MaxUploadMB) << 20)
	if !cfg.CORSDisabled {
		// The original deployment allowed any origin so the frontend can be
		// served from anywhere during demos.
		httpapi.SetCORSOptions(true, []string{"*"}, []string{"GET", "POST", "OPTIONS"}, []string{"*"})
	} else {
		httpapi.SetCORSOptions(false, nil, nil, nil)
	}

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	mux := httpapi.NewMux(svc)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("ollama", cfg.OllamaHost).Str("model", cfg.VisionModel).Msg("tribald listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
	if err := svc.Close(); err != nil {
		log.Error().Err(err).Msg("close service")
	}
	return nil
}
