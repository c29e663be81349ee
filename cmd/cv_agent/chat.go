package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-chat/internal/chat"
	"github.com/jonathan/cv-chat/internal/config"
	"github.com/jonathan/cv-chat/internal/observability"
	"github.com/jonathan/cv-chat/internal/store"
	"github.com/jonathan/cv-chat/internal/types"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask one question about a CV",
	Long:  "Answer a single question about the default profile, or about a markdown CV given with --markdown.",
	RunE:  runChat,
}

var (
	chatMessage  string
	chatSection  string
	chatMarkdown string
	chatVerbose  bool
)

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Question to ask (required)")
	chatCmd.Flags().StringVarP(&chatSection, "section", "s", "", "Section to focus on (bio, experience, skills, certificates, languages, memberships)")
	chatCmd.Flags().StringVar(&chatMarkdown, "markdown", "", "Markdown CV to answer from instead of the default profile")
	chatCmd.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "Print the answer in a box")
	_ = chatCmd.MarkFlagRequired("message")

	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	profile, err := chatProfile(chatMarkdown)
	if err != nil {
		return err
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	client, err := openLLM(ctx, cfg)
	if err != nil {
		return err
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	answer := chat.NewService(client).Respond(ctx, chatMessage, profile, chatSection)

	if chatVerbose {
		observability.NewPrinter(os.Stdout).PrintChat(chatSection, chatMessage, answer)
		return nil
	}
	_, _ = fmt.Fprintln(os.Stdout, answer)
	return nil
}

// chatProfile returns the sample profile, overlaid with markdownPath when set.
func chatProfile(markdownPath string) (*types.Profile, error) {
	profiles := store.NewMemoryStore()
	ctx := context.Background()

	if markdownPath != "" {
		if err := importMarkdown(ctx, profiles, markdownPath); err != nil {
			return nil, err
		}
	}
	return profiles.GetProfile(ctx, types.DefaultProfileID)
}
