package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

// generateOptions are the command line settings of a one-shot run.
type generateOptions struct {
	Request  WorksheetRequest
	Output   string
	PageSize string
}

func parseGenerateFlags(args []string, stderr io.Writer) (generateOptions, error) {
	fs := flag.NewFlagSet("mathsheet", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts generateOptions
		req  = &opts.Request
	)
	fs.IntVar(&req.Rows, "num-rows", 5, "rows of problems per page")
	fs.IntVar(&req.Cols, "num-cols", 4, "columns of problems per page")
	fs.StringVar(&opts.Output, "output-file", "output/test", "output path without extension (.pdf and .tex are written)")
	fs.Uint64Var(&req.Seed, "seed", 1, "random seed")
	fs.IntVar(&req.FirstDigits, "first-digits", 3, "digits of the first operand")
	fs.IntVar(&req.SecondDigits, "second-digits", 2, "digits of the second operand")
	fs.IntVar(&req.OverrideMax, "override-max", 0, "draw both operands from [1, max] instead (0 = off)")
	fs.StringVar(&req.Operation, "operation", SelectMultiply, "operation: * + - or ? for random")
	fs.StringVar(&req.Title, "title", "", "heading printed on each page")
	fs.StringVar(&opts.PageSize, "page-size", "Letter", "page size: Letter, Legal, A3, A4 or A5")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// serverConfig is read from the environment by `mathsheet serve`.
type serverConfig struct {
	Port   string
	Gemini GeminiConf
	Redis  RedisConf
}

func loadServerConfig(getenv func(string) string) (serverConfig, error) {
	cfg := serverConfig{
		Port: getenv("PORT"),
		Gemini: GeminiConf{
			ProjectID: getenv("GCP_PROJECT_ID"),
			Region:    getenv("GCP_REGION"),
			Model:     getenv("GEMINI_MODEL"),
		},
		Redis: RedisConf{
			Addr:     getenv("REDIS_ADDR"),
			Password: getenv("REDIS_PASSWORD"),
		},
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v := getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	if v := getenv("WORKSHEET_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("WORKSHEET_TTL: %w", err)
		}
		cfg.Redis.TTL = ttl
	}
	return cfg, nil
}
