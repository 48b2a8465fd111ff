package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tailored-agentic-units/dialogue/engine"
	"github.com/tailored-agentic-units/dialogue/observability"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to engine config JSON file")
		sessionKey = flag.String("session", "", "Session key (default session when empty)")
		text       = flag.String("text", "", "Turn text to send")
		force      = flag.String("force", "", "Lock this intent immediately, skipping the model")
		reset      = flag.Bool("reset", false, "Reset the session instead of sending a turn")
		pipeline   = flag.String("pipeline", "", "Pipeline override: single or dual")
		interact   = flag.Bool("i", false, "Interactive mode: read turns from stdin")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	if !*interact && !*reset && *text == "" && *force == "" {
		fmt.Fprintln(os.Stderr, "Usage: dialog [-config <file>] -text <turn> | -force <intent> | -reset | -i")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Best effort; a missing .env just means the key comes from the real env.
	_ = godotenv.Load()

	cfg := engine.DefaultConfig()
	if *configFile != "" {
		loaded, err := engine.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	cfg.Completion.APIKey = os.Getenv("OPENAI_API_KEY")
	if *pipeline != "" {
		cfg.Pipeline = *pipeline
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	e, err := engine.New(&cfg)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *reset {
		fmt.Println(e.Reset(ctx, *sessionKey))
		return
	}

	if *interact {
		runInteractive(ctx, e, *sessionKey)
		return
	}

	reply := e.Infer(ctx, *sessionKey, *text, *force)
	fmt.Println(reply.String())
}

func runInteractive(ctx context.Context, e *engine.Engine, key string) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "/reset":
			fmt.Println(e.Reset(ctx, key))
		case strings.HasPrefix(line, "/force "):
			fmt.Println(e.Infer(ctx, key, "", strings.TrimPrefix(line, "/force ")).String())
		default:
			fmt.Println(e.Infer(ctx, key, line, "").String())
		}
		fmt.Print("> ")
	}
}
