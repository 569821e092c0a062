package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		var cfg serverConfig
		if cfg, err = loadServerConfig(os.Getenv); err == nil {
			err = serve(cfg)
		}
	} else {
		err = generate(os.Args[1:])
	}
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generate writes one worksheet to <output-file>.pdf and <output-file>.tex.
func generate(args []string) error {
	opts, err := parseGenerateFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	pdfCfg := DefaultPDFConfig()
	pdfCfg.PageSize = opts.PageSize
	pdf, err := NewPDFRenderer(pdfCfg)
	if err != nil {
		return err
	}

	ws, err := NewWorksheet(opts.Request)
	if err != nil {
		return err
	}
	doc, err := ws.Document()
	if err != nil {
		return err
	}

	paths, err := Publish(doc, opts.Output, pdf, NewTeXRenderer())
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.Printf("Fiche écrite : %s", p)
	}
	return nil
}

// serve runs the HTTP API until the process is signalled.
func serve(cfg serverConfig) error {
	ctx := context.Background()

	var reader AnswerReader
	if cfg.Gemini.ProjectID != "" {
		gemini, err := NewGeminiClient(ctx, cfg.Gemini)
		if err != nil {
			return fmt.Errorf("impossible d'initialiser Gemini : %w", err)
		}
		defer gemini.Close()
		reader = gemini
		log.Printf("Client Gemini initialisé (projet: %s, modèle: %s)", cfg.Gemini.ProjectID, gemini.modelName)
	} else {
		log.Println("GCP_PROJECT_ID non défini, correction par photo désactivée")
	}

	var store WorksheetStore = NewMemoryStore()
	if cfg.Redis.Addr != "" {
		rs, err := NewRedisStore(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rs.Close()
		store = rs
	}

	pdf, err := NewPDFRenderer(DefaultPDFConfig())
	if err != nil {
		return err
	}
	srv := NewServer(store, reader, pdf)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("Serveur démarré sur http://localhost:%s", cfg.Port)
	return runWithGracefulShutdown(httpServer, shutdownTimeout)
}

// runWithGracefulShutdown serves until SIGINT or SIGTERM, then gives
// in-flight requests up to timeout to finish.
func runWithGracefulShutdown(server *http.Server, timeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return err
	case <-sigCtx.Done():
	}
	log.Printf("[INFO] got signal, shutting down ...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] server shutdown failed: %v", err)
	}
	if err := <-serverErr; err != nil {
		return err
	}
	log.Printf("[INFO] shutdown complete")
	return nil
}
