// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	artifactbadger "github.com/poiesic/chatalogue/artifact/badger"
	"github.com/poiesic/chatalogue/catalog/sqlite"
	"github.com/poiesic/chatalogue/chat"
	"github.com/poiesic/chatalogue/dialog"
	"github.com/poiesic/chatalogue/nlu"
	"github.com/poiesic/chatalogue/nlu/intent"
	"github.com/poiesic/chatalogue/nlu/openai"
	"github.com/poiesic/chatalogue/parser"
)

func main() {
	// .env is optional; values already in the environment win.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "chatalogue",
		Usage: "Question answering over the course catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "chat",
				Usage:  "Interactive question answering session",
				Action: chatCommand,
				Flags:  engineFlags(),
			},
			{
				Name:      "ask",
				Usage:     "Answer a single question",
				ArgsUsage: "QUESTION",
				Action:    askCommand,
				Flags:     engineFlags(),
			},
			{
				Name:   "train",
				Usage:  "Train intent centroids from labeled examples",
				Action: trainCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "artifacts",
						Aliases: []string{"a"},
						Usage:   "Path to BadgerDB artifact store directory",
						Value:   "artifacts",
					},
					&cli.StringFlag{
						Name:     "examples",
						Aliases:  []string{"e"},
						Usage:    "Path to labeled examples JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for concurrent embedding",
						Value: 4,
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Import a course catalog CSV into the database",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to SQLite catalog database",
						Value:   "chatalogue.db",
					},
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to course catalog CSV file",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// engineFlags are shared by the chat and ask commands.
func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to SQLite catalog database",
			Value:   "chatalogue.db",
		},
		&cli.StringFlag{
			Name:    "artifacts",
			Aliases: []string{"a"},
			Usage:   "Path to BadgerDB artifact store directory",
			Value:   "artifacts",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.Float64Flag{
			Name:  "min-confidence",
			Usage: "Confidence below which a clause is treated as a follow-up",
			Value: 0.5,
		},
	}
}

// buildEngine assembles the answering pipeline from the command flags.
// The returned cleanup function closes every opened resource.
func buildEngine(c *cli.Context) (*chat.Engine, func(), error) {
	ctx := context.Background()

	config := nlu.NewConfig(
		nlu.WithEmbeddingHost(c.String("embedding-host")),
		nlu.WithEmbeddingModel(c.String("embedding-model")),
		nlu.WithAPIKey(os.Getenv("OPENAI_API_KEY")),
		nlu.WithMinConfidence(c.Float64("min-confidence")),
	)

	provider, err := openai.NewProvider(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create NLU provider: %w", err)
	}

	backend, err := artifactbadger.OpenBackend(c.String("artifacts"), false)
	if err != nil {
		provider.Close()
		return nil, nil, fmt.Errorf("failed to open artifact store: %w", err)
	}

	centroidRepo, err := artifactbadger.NewCentroidRepository(backend)
	if err != nil {
		backend.Close()
		provider.Close()
		return nil, nil, fmt.Errorf("failed to create centroid repository: %w", err)
	}

	centroids, err := centroidRepo.ListCentroids(ctx, config.EmbeddingModel)
	if err == nil && len(centroids) == 0 {
		err = fmt.Errorf("no trained centroids for model %q, run the train command first", config.EmbeddingModel)
	}
	if err != nil {
		centroidRepo.Close()
		backend.Close()
		provider.Close()
		return nil, nil, err
	}

	classifier, err := intent.NewClassifier(provider.Embedder(), centroids)
	if err != nil {
		centroidRepo.Close()
		backend.Close()
		provider.Close()
		return nil, nil, fmt.Errorf("failed to create intent classifier: %w", err)
	}

	// Centroids are loaded into the classifier; the store can close now.
	centroidRepo.Close()
	backend.Close()

	p, err := parser.New(classifier, parser.WithMinConfidence(config.MinConfidence))
	if err != nil {
		provider.Close()
		return nil, nil, fmt.Errorf("failed to create parser: %w", err)
	}

	courses, err := sqlite.Open(c.String("db"))
	if err != nil {
		provider.Close()
		return nil, nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	opts := []chat.Option{}
	if responder := provider.Responder(); responder != nil {
		opts = append(opts, chat.WithResponder(responder))
	} else {
		slog.Info("no API key configured, answers use the deterministic formatter")
	}

	engine, err := chat.NewEngine(p, courses, opts...)
	if err != nil {
		courses.Close()
		provider.Close()
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}

	cleanup := func() {
		courses.Close()
		provider.Close()
	}
	return engine, cleanup, nil
}

func chatCommand(c *cli.Context) error {
	engine, cleanup, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	session := dialog.NewSession()
	ctx := context.Background()

	fmt.Println("Ask me about courses. Commands: reset, context, exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit", "bye":
			fmt.Println("Goodbye!")
			return nil
		case "reset":
			session.Reset()
			fmt.Println("Context cleared.")
			continue
		case "context":
			if summary := session.Context.Compress(); summary != "" {
				fmt.Println(summary)
			} else {
				fmt.Println("(no active context)")
			}
			continue
		}

		answer, err := engine.Answer(ctx, session, line)
		if err != nil {
			slog.Error("failed to answer", "err", err)
			fmt.Println("Something went wrong answering that, please try again.")
			continue
		}
		fmt.Println(answer)
	}

	return scanner.Err()
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	engine, cleanup, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	answer, err := engine.Answer(context.Background(), dialog.NewSession(), question)
	if err != nil {
		return fmt.Errorf("failed to answer: %w", err)
	}

	fmt.Println(answer)
	return nil
}

func trainCommand(c *cli.Context) error {
	ctx := context.Background()

	examples, err := intent.LoadExamples(c.String("examples"))
	if err != nil {
		return fmt.Errorf("failed to load examples: %w", err)
	}

	config := nlu.NewConfig(
		nlu.WithEmbeddingHost(c.String("embedding-host")),
		nlu.WithEmbeddingModel(c.String("embedding-model")),
	)

	embedder, err := openai.NewEmbedder(config)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	trainer, err := intent.NewTrainer(embedder, config.EmbeddingModel,
		intent.WithPoolSize(c.Int("pool-size")))
	if err != nil {
		return fmt.Errorf("failed to create trainer: %w", err)
	}
	defer trainer.Release()

	fmt.Fprintf(os.Stderr, "Examples: %d\n", len(examples))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	centroids, err := trainer.Train(ctx, examples)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	backend, err := artifactbadger.OpenBackend(c.String("artifacts"), false)
	if err != nil {
		return fmt.Errorf("failed to open artifact store: %w", err)
	}
	defer backend.Close()

	repo, err := artifactbadger.NewCentroidRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create centroid repository: %w", err)
	}
	defer repo.Close()

	if _, err := repo.PutCentroids(ctx, centroids...); err != nil {
		return fmt.Errorf("failed to store centroids: %w", err)
	}

	fmt.Printf("Stored %d intent centroids in %s\n", len(centroids), c.String("artifacts"))
	return nil
}

func seedCommand(c *cli.Context) error {
	repo, err := sqlite.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer repo.Close()

	count, err := repo.ImportCSV(context.Background(), c.String("file"))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d course rows into %s\n", count, c.String("db"))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
