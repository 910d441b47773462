package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/outline"
	"github.com/fwojciec/outline/fs"
	"github.com/fwojciec/outline/goquery"
	outlinehttp "github.com/fwojciec/outline/http"
	"github.com/fwojciec/outline/rate"
	"github.com/fwojciec/outline/rod"
	outslog "github.com/fwojciec/outline/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read for the "-" source.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Browser     bool          `short:"b" env:"OUTLINE_BROWSER" help:"Render sources in headless Chrome instead of parsing static markup"`
	Focus       string        `short:"f" env:"OUTLINE_FOCUS" help:"CSS selector of the element to focus before outlining"`
	Width       int           `default:"1280" env:"OUTLINE_WIDTH" help:"Viewport width in pixels"`
	Height      int           `default:"720" env:"OUTLINE_HEIGHT" help:"Viewport height in pixels"`
	Timeout     time.Duration `short:"t" default:"10s" env:"OUTLINE_TIMEOUT" help:"Load timeout per source"`
	RenderDelay time.Duration `default:"0s" env:"OUTLINE_RENDER_DELAY" help:"Extra wait after page load (browser mode)"`
	Stealth     bool          `env:"OUTLINE_STEALTH" help:"Apply anti bot-detection patches (browser mode)"`
	Chrome      string        `env:"OUTLINE_CHROME" help:"Path to the Chrome/Chromium executable (browser mode)"`
	Rate        float64       `default:"0" env:"OUTLINE_RATE" help:"Maximum loads per second per host (0 disables)"`
	Concurrency int           `short:"c" default:"3" env:"OUTLINE_CONCURRENCY" help:"Concurrent load limit"`
	Digest      bool          `short:"d" help:"Append an xxhash64 digest line to each outline"`
	Out         string        `short:"o" env:"OUTLINE_OUT" type:"path" help:"Write each outline to a file under this directory instead of stdout"`
	Verbose     bool          `short:"v" env:"OUTLINE_VERBOSE" help:"Log progress to stderr"`
	Sources     []string      `arg:"" required:"" help:"URLs, file paths, or - for stdin"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("outline"),
		kong.Description("Print a compact outline of the interactive structure of web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Width <= 0 || cli.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", cli.Width, cli.Height)
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	loader, err := m.newLoader(cli, logger)
	if err != nil {
		if cli.Browser {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		}
		return err
	}
	defer loader.Close()

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Loader:    loader,
		Converter: outslog.NewLoggingConverter(outline.NewOutliner(), logger),
	}
	if cli.Out != "" {
		deps.Writer = fs.NewWriter(cli.Out)
	}

	concurrency := cli.Concurrency
	if concurrency <= 0 {
		concurrency = 3
	}

	cmd := &ConvertCmd{
		Sources:     cli.Sources,
		Concurrency: concurrency,
		Digest:      cli.Digest,
	}

	return cmd.Run(deps)
}

// newLoader wires the loader stack selected by the flags.
func (m *Main) newLoader(cli *CLI, logger *slog.Logger) (outline.Loader, error) {
	viewport := outline.Viewport{Width: float64(cli.Width), Height: float64(cli.Height)}

	var loader outline.Loader
	if cli.Browser {
		opts := []rod.Option{
			rod.WithTimeout(cli.Timeout),
			rod.WithViewport(viewport),
			rod.WithRenderDelay(cli.RenderDelay),
		}
		if cli.Focus != "" {
			opts = append(opts, rod.WithFocus(cli.Focus))
		}
		if cli.Stealth {
			opts = append(opts, rod.WithStealth())
		}
		if cli.Chrome != "" {
			opts = append(opts, rod.WithManagerOptions(rod.WithBrowserBin(cli.Chrome)))
		}
		rodLoader, err := rod.NewLoader(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		loader = rodLoader
	} else {
		fetcher := outslog.NewLoggingFetcher(outlinehttp.NewFetcher(outlinehttp.WithTimeout(cli.Timeout)), logger)
		opts := []goquery.Option{goquery.WithViewport(viewport)}
		if cli.Focus != "" {
			opts = append(opts, goquery.WithFocus(cli.Focus))
		}
		staticLoader := goquery.NewLoader(fetcher, opts...)
		staticLoader.Stdin = m.Stdin
		loader = staticLoader
	}

	if cli.Rate > 0 {
		loader = rate.NewLoader(loader, rate.NewDomainLimiter(cli.Rate))
	}

	return outslog.NewLoggingLoader(loader, logger), nil
}
