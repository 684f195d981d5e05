package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"banking-bpo/core/config"
	"banking-bpo/core/extract"
	"banking-bpo/core/logging"
	"banking-bpo/core/pipeline"
	"banking-bpo/core/server"
	"banking-bpo/core/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		panic(fmt.Sprintf("Cannot open data store: %v", err))
	}

	prompts, err := extract.LoadPrompts(cfg.PromptsFile)
	if err != nil {
		panic(fmt.Sprintf("Cannot load prompts: %v", err))
	}

	client, err := extract.NewClient(extract.Config{
		BaseURL:     cfg.LLMBaseURL,
		APIKey:      cfg.LLMAPIKey,
		Model:       cfg.LLMModel,
		VisionModel: cfg.LLMVisionModel,
		Timeout:     cfg.LLMTimeout,
	}, prompts)
	if err != nil {
		panic(fmt.Sprintf("Cannot create extraction client: %v", err))
	}

	srv := server.New(cfg, st, pipeline.New(st, client), client)
	slog.Info("server listening", "addr", srv.Addr, "data_dir", st.DataDir())
	if err := srv.ListenAndServe(); err != nil {
		panic(fmt.Sprintf("Cannot start server: %v", err))
	}
}
