package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/cli"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/engine"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/llm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := engine.LoadConfig()

	var pipelineObserver engine.Observer = engine.NoopObserver{}
	var llmObserver llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		pipelineObserver = engine.NewLogObserver(os.Stderr)
		llmObserver = llm.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Engine: engine.New(cfg, pipelineObserver, llmObserver),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
