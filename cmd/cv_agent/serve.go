package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/cv-chat/internal/chat"
	"github.com/jonathan/cv-chat/internal/config"
	"github.com/jonathan/cv-chat/internal/llm"
	"github.com/jonathan/cv-chat/internal/markdown"
	"github.com/jonathan/cv-chat/internal/server"
	"github.com/jonathan/cv-chat/internal/store"
	"github.com/jonathan/cv-chat/internal/types"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigPath string
	serveMarkdown   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the CV profile, chat and markdown import endpoints.

Profiles are kept in PostgreSQL when DATABASE_URL is set and in memory otherwise.
Chat answers come from Gemini when GEMINI_API_KEY is set and from canned answers otherwise.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, fmt.Sprintf("Port to listen on (default %d, or PORT)", config.DefaultPort))
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveMarkdown, "markdown", "", "Markdown CV loaded into the default profile at startup")
	rootCmd.AddCommand(serveCmd)
}

// resolveServeConfig layers flags over the config file over the environment.
func resolveServeConfig(configPath string, flags config.Config) (config.Config, error) {
	env, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	file := &config.Config{}
	if configPath != "" {
		if file, err = config.LoadConfig(configPath); err != nil {
			return config.Config{}, err
		}
	}

	cfg := flags.MergeWithDefaults(file.MergeWithDefaults(env))
	cfg = cfg.MergeWithDefaults(config.Config{Port: config.DefaultPort})
	cfg.Verbose = flags.Verbose || file.Verbose

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveServeConfig(serveConfigPath, config.Config{Port: servePort, ProfileMarkdown: serveMarkdown})
	if err != nil {
		return err
	}

	ctx := context.Background()

	profiles, err := openStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}

	if cfg.ProfileMarkdown != "" {
		if err := importMarkdown(ctx, profiles, cfg.ProfileMarkdown); err != nil {
			profiles.Close()
			return err
		}
	}

	client, err := openLLM(ctx, cfg)
	if err != nil {
		profiles.Close()
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	srv, err := server.New(server.Config{
		Port:     cfg.Port,
		Store:    profiles,
		Chat:     chat.NewService(client),
		Renderer: markdown.NewRenderer(markdown.Options{}),
	})
	if err != nil {
		profiles.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// openStore connects to PostgreSQL when databaseURL is set, else returns a memory store.
func openStore(ctx context.Context, databaseURL string) (store.Store, error) {
	if databaseURL == "" {
		log.Println("DATABASE_URL not set, keeping profiles in memory")
		return store.NewMemoryStore(), nil
	}

	pg, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pg.EnsureSchema(ctx); err != nil {
		pg.Close()
		return nil, fmt.Errorf("failed to prepare database schema: %w", err)
	}
	return pg, nil
}

// openLLM returns a Gemini client, or nil when no API key is configured.
func openLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		log.Println("GEMINI_API_KEY not set, chat will use fallback answers")
		return nil, nil
	}

	client, err := llm.NewClient(ctx, cfg.LLMConfig(), cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}

// importMarkdown parses a markdown CV into the default profile.
func importMarkdown(ctx context.Context, profiles store.Store, path string) error {
	patch, err := parseMarkdownFile(path)
	if err != nil {
		return err
	}

	updated, err := profiles.UpdateProfile(ctx, types.DefaultProfileID, patch)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	if updated == nil {
		return fmt.Errorf("failed to import %s: default profile missing", path)
	}

	log.Printf("Loaded CV for %s from %s", updated.Name, path)
	return nil
}
