package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"SymbolWatch/internal/model"
	"SymbolWatch/internal/notifier"
	"SymbolWatch/internal/scheduler"

	"github.com/google/subcommands"
)

type watchCmd struct {
	plain bool
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "refreshes the watchlist periodically and prints every update" }
func (*watchCmd) Usage() string {
	return `symbolwatch watch [-plain]

Fetches every configured symbol immediately, then again at the configured
refresh interval, printing one line per symbol and cycle. When a Telegram
bot is configured, it also answers /quote, /chart and /refresh commands.

Runs until interrupted (Ctrl+C or SIGTERM).
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "log updates as plain lines instead of styled output (for redirected output)")
}

func (c *watchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log.Println("[INFO] SymbolWatch starting...")
	a, err := loadApp()
	if err != nil {
		log.Printf("[FATAL] %v", err)
		return subcommands.ExitFailure
	}
	log.Printf("[INFO] data source: %s, watching %s", a.fetcher.Name(), strings.Join(a.cfg.Holdings.Symbols(), ", "))

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := a.scheduler(ctx)
	if c.plain {
		sched.Subscribe(scheduler.ListenerFunc(func(evt model.UpdateEvent) {
			log.Printf("[INFO] %s", notifier.FormatEvent(evt))
		}))
	} else {
		sched.Subscribe(notifier.NewConsole(os.Stdout))
	}

	if a.cfg.TelegramEnabled() {
		tn := notifier.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.cfg.Proxy)
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	if err := sched.Start(); err != nil {
		log.Printf("[FATAL] start scheduler: %v", err)
		return subcommands.ExitFailure
	}
	defer sched.Stop()

	log.Println("[INFO] SymbolWatch is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	return subcommands.ExitSuccess
}
