// ABOUTME: CLI entry point for echostatus: web server or one-shot status query
// ABOUTME: Loads config, builds the status client, dispatches to serve or query

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/echostatus/internal/config"
	"github.com/mauromedda/echostatus/internal/i18n"
	"github.com/mauromedda/echostatus/internal/log"
	"github.com/mauromedda/echostatus/internal/report"
	"github.com/mauromedda/echostatus/internal/status"
	"github.com/mauromedda/echostatus/internal/web"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("echostatus %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, args, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration and dispatches to the selected command.
func run(ctx context.Context, args cliArgs, stdout *os.File) error {
	cfg, err := config.Load(args.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if lvl, ok := log.ParseLevel(cfg.LogLevel); ok {
		log.SetLevel(lvl)
	}
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}
	if args.addr != "" {
		cfg.Listen = args.addr
	}

	lang, ok := i18n.Parse(cfg.Language)
	if !ok {
		lang = i18n.Default
	}
	if args.lang != "" {
		if lang, ok = i18n.Parse(args.lang); !ok {
			return fmt.Errorf("unsupported language %q", args.lang)
		}
	}

	client := status.NewClient(status.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
		CacheSize: cfg.Cache.Size,
		CacheTTL:  cfg.Cache.TTL,
	})
	log.Debug("status api %s, timeout %s", cfg.API.BaseURL, cfg.API.Timeout)

	switch args.command {
	case cmdQuery:
		return query(ctx, client, cfg, lang, args, stdout)
	default:
		return serve(ctx, client, cfg, lang, args)
	}
}

func webOptions(cfg *config.Config, lang i18n.Lang) web.Options {
	return web.Options{
		Examples:    cfg.Examples,
		Language:    lang,
		PlayerLimit: cfg.PlayerLimit,
		Location:    cfg.Location(),
	}
}

// serve runs the web server and reloads page settings when the config file
// changes. A -lang flag pins the language across reloads.
func serve(ctx context.Context, client *status.Client, cfg *config.Config, lang i18n.Lang, args cliArgs) error {
	srv, err := web.New(client, webOptions(cfg, lang))
	if err != nil {
		return err
	}

	watcher := config.NewWatcher(args.configPath, func(next *config.Config) {
		nextLang := lang
		if args.lang == "" {
			if l, ok := i18n.Parse(next.Language); ok {
				nextLang = l
			}
		}
		srv.Reload(webOptions(next, nextLang))
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx, cfg.Listen) })
	g.Go(func() error { return watcher.Run(gctx) })
	return g.Wait()
}

func query(ctx context.Context, client *status.Client, cfg *config.Config, lang i18n.Lang, args cliArgs, stdout *os.File) error {
	s, err := client.Lookup(ctx, args.address)
	if err != nil {
		return describeLookupError(lang, err)
	}

	fd := int(stdout.Fd())
	tty := term.IsTerminal(fd)
	renderer := lipgloss.NewRenderer(stdout)
	width, iconSize := 0, 0
	if tty {
		iconSize = 16
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	rep := report.New(report.Options{
		Renderer:     renderer,
		Color:        tty,
		Lang:         lang,
		Location:     cfg.Location(),
		PlayerLimit:  cfg.PlayerLimit,
		PlayerFilter: args.player,
		Width:        width,
		IconSize:     iconSize,
	})

	out := rep.Text(s)
	if args.markdown {
		if out, err = rep.Markdown(s); err != nil {
			return err
		}
	}
	_, err = io.WriteString(stdout, out)
	return err
}

// describeLookupError prefixes the translated category to the cause.
func describeLookupError(lang i18n.Lang, err error) error {
	tr := i18n.New(lang)
	switch {
	case errors.Is(err, status.ErrInvalidAddress):
		return fmt.Errorf("%s: %w", tr.Get("invalidIP"), err)
	case errors.Is(err, status.ErrTimeout):
		return fmt.Errorf("%s: %w", tr.Get("timeout"), err)
	default:
		return fmt.Errorf("%s: %w", tr.Get("connectionError"), err)
	}
}
