package scheduler

import (
	"errors"
	"fmt"
	"strings"

	"SymbolWatch/internal/notifier"
	"SymbolWatch/internal/watchlist"
)

const helpText = "Available commands:\n" +
	"• /quote - latest prices\n" +
	"• /chart <SYMBOL> - price series of one symbol\n" +
	"• /refresh - refresh all symbols now"

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	// Telegram appends the bot name in groups: /quote@my_bot
	name, _, _ := strings.Cut(strings.ToLower(fields[0]), "@")

	switch name {
	case "/quote", "/q":
		return notifier.FormatQuoteTable(s.Store.All())
	case "/chart", "/c":
		if len(fields) < 2 {
			return "usage: /chart <SYMBOL>"
		}
		return s.chartReply(fields[1])
	case "/refresh":
		ctx := s.parent
		s.mu.Lock()
		if s.state == Running {
			ctx = s.ctx
		}
		s.mu.Unlock()
		rep := s.RefreshNow(ctx)
		return fmt.Sprintf("Refreshed %d symbols: %d updated, %d unavailable, %d failed\n\n%s",
			len(rep.Events), rep.Updated, rep.Unavailable, rep.Failed, notifier.FormatQuoteTable(s.Store.All()))
	default:
		return helpText
	}
}

func (s *Scheduler) chartReply(symbol string) string {
	chart, err := s.Store.Chart(symbol)
	if err != nil {
		// Symbols are case sensitive at the provider but users type them loosely.
		var nf *watchlist.NotFoundError
		if errors.As(err, &nf) {
			if c, err2 := s.Store.Chart(strings.ToUpper(symbol)); err2 == nil {
				return notifier.FormatChart(c)
			}
		}
		return err.Error()
	}
	return notifier.FormatChart(chart)
}
