// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

// Package main is the relevia-cli operator tool.
//
// It wraps the SDK for quick catalog maintenance and smoke tests from the
// shell. Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): RELEVIA_-prefixed environment variables, an optional
// relevia.yaml, and built-in defaults.
//
// Usage:
//
//	relevia-cli recommend -user u42 [-limit 10] [-cursor TOKEN]
//	relevia-cli upsert-items -file items.json
//	relevia-cli upsert-users -file users.json
//	relevia-cli track -file interactions.json
//	relevia-cli delete-item -id sku-123
//	relevia-cli delete-user -id u42
//
// Payload files contain a JSON array of the corresponding wire records.
//
// Required environment (or relevia.yaml equivalents):
//   - RELEVIA_API_KEY: project API key
//   - RELEVIA_PROJECT_ID or RELEVIA_BASE_URL: endpoint selection
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"

	relevia "github.com/relevia/relevia-go"
	"github.com/relevia/relevia-go/internal/config"
	"github.com/relevia/relevia-go/internal/logging"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	client, err := relevia.New(relevia.Config{
		APIKey:    cfg.APIKey,
		ProjectID: cfg.ProjectID,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
	}, relevia.WithLogger(logging.Logger()))
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to construct client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, client, os.Args[1], os.Args[2:]); err != nil {
		logging.Fatal().Str("command", os.Args[1]).Err(err).Msg("command failed")
	}
}

func run(ctx context.Context, client *relevia.Client, command string, args []string) error {
	switch command {
	case "recommend":
		return runRecommend(ctx, client, args)
	case "upsert-items":
		return runUpsertItems(ctx, client, args)
	case "upsert-users":
		return runUpsertUsers(ctx, client, args)
	case "track":
		return runTrack(ctx, client, args)
	case "delete-item":
		return runDeleteItem(ctx, client, args)
	case "delete-user":
		return runDeleteUser(ctx, client, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runRecommend(ctx context.Context, client *relevia.Client, args []string) error {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	user := fs.String("user", "", "user id to recommend for")
	limit := fs.Int("limit", 0, "maximum number of recommendations (0 = server default)")
	cursor := fs.String("cursor", "", "pagination cursor from a previous response")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := relevia.RecommendationRequest{
		UserID: *user,
		Cursor: *cursor,
	}
	if *limit > 0 {
		req.Limit = relevia.Int(*limit)
	}

	resp, err := client.GetRecommendations(ctx, req)
	if err != nil {
		return err
	}

	return printJSON(resp)
}

func runUpsertItems(ctx context.Context, client *relevia.Client, args []string) error {
	var items []relevia.Item
	if err := readPayloadFile("upsert-items", args, &items); err != nil {
		return err
	}

	if err := client.BatchUpsertItems(ctx, items); err != nil {
		return err
	}

	logging.Info().Int("count", len(items)).Msg("items upserted")
	return nil
}

func runUpsertUsers(ctx context.Context, client *relevia.Client, args []string) error {
	var users []relevia.User
	if err := readPayloadFile("upsert-users", args, &users); err != nil {
		return err
	}

	if err := client.BatchUpsertUsers(ctx, users); err != nil {
		return err
	}

	logging.Info().Int("count", len(users)).Msg("users upserted")
	return nil
}

func runTrack(ctx context.Context, client *relevia.Client, args []string) error {
	var interactions []relevia.Interaction
	if err := readPayloadFile("track", args, &interactions); err != nil {
		return err
	}

	if err := client.BatchTrackInteractions(ctx, interactions); err != nil {
		return err
	}

	logging.Info().Int("count", len(interactions)).Msg("interactions tracked")
	return nil
}

func runDeleteItem(ctx context.Context, client *relevia.Client, args []string) error {
	fs := flag.NewFlagSet("delete-item", flag.ExitOnError)
	id := fs.String("id", "", "item id to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := client.DeleteItem(ctx, *id); err != nil {
		return err
	}

	logging.Info().Str("item_id", *id).Msg("item deleted")
	return nil
}

func runDeleteUser(ctx context.Context, client *relevia.Client, args []string) error {
	fs := flag.NewFlagSet("delete-user", flag.ExitOnError)
	id := fs.String("id", "", "user id to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := client.DeleteUser(ctx, *id); err != nil {
		return err
	}

	logging.Info().Str("user_id", *id).Msg("user deleted")
	return nil
}

// readPayloadFile parses the -file flag for a command and decodes the JSON
// array it points at into out.
func readPayloadFile(command string, args []string, out interface{}) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	path := fs.String("file", "", "path to a JSON payload file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("-file is required for %s", command)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		return fmt.Errorf("failed to read payload file: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse payload file %s: %w", *path, err)
	}
	return nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `relevia-cli - Relevia recommendation service operator tool

Commands:
  recommend     -user ID [-limit N] [-cursor TOKEN]   fetch recommendations
  upsert-items  -file items.json                      bulk create/replace items
  upsert-users  -file users.json                      bulk create/replace users
  track         -file interactions.json               bulk record interactions
  delete-item   -id ID                                delete one item
  delete-user   -id ID                                delete one user

Configuration: RELEVIA_API_KEY plus RELEVIA_PROJECT_ID or RELEVIA_BASE_URL,
or a relevia.yaml file (see RELEVIA_CONFIG to override the path).`)
}
