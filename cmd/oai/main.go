package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/openai-lite/internal/app"
	"github.com/samvad-hq/openai-lite/internal/config"
	"github.com/samvad-hq/openai-lite/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "oai: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := flag.String("profile", "", "model profile id from the profiles file")
	model := flag.String("model", "", "model id override for this invocation")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("missing operation")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	log.Debugw("starting", "operation", args[0])

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := app.NewRunner(cfg, *profile, *model, logger.ZapObjLogger{})
	if err != nil {
		return err
	}

	return runner.Run(ctx, args[0], args[1:])
}

func printUsage() {
	fmt.Println("Usage: oai [OPTIONS] <operation> [ARGS]")
	fmt.Println()
	fmt.Println("Operations:")
	fmt.Println("  models [id]                 List models, or show one model")
	fmt.Println("  completion <prompt>         Request a text completion")
	fmt.Println("  chat <message>              Request a chat completion")
	fmt.Println("  edit <input> <instruction>  Request an edit of input")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -profile id   Model profile from the profiles file")
	fmt.Println("  -model id     Model override for this invocation")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  OPENAI_API_KEY               API key (required)")
	fmt.Println("  OPENAI_ORGANIZATION          Organization id")
	fmt.Println("  OPENAI_COMPLETION_MODEL      Default completion model")
	fmt.Println("  OPENAI_CHAT_MODEL            Default chat model")
	fmt.Println("  OPENAI_EDIT_MODEL            Default edit model")
	fmt.Println("  OPENAI_PROFILES_FILE         Path to the profiles file")
	fmt.Println("  OPENAI_HTTP_TIMEOUT_SECONDS  HTTP timeout in seconds")
	fmt.Println("  OPENAI_LOG_LEVEL             debug|info|warn|error")
	fmt.Println()
	fmt.Println("The remote API reports failures inside the JSON body; a reply")
	fmt.Println("with an \"error\" key is printed like any other response.")
}
