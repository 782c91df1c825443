package notifier

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"SymbolWatch/internal/calculator"
	"SymbolWatch/internal/model"

	"github.com/Rhymond/go-money"
)

// Loading is shown for entries that were never refreshed.
const Loading = "..."

// FormatPrice formats a close price with exactly two decimals, rounding the
// exact binary value of v (2.675 is 2.67499... and renders as "2.67").
func FormatPrice(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return model.NotAvailable
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatEntry returns the display text of one watchlist entry.
func FormatEntry(e model.WatchlistEntry) string {
	if !e.Refreshed {
		return Loading
	}
	c, ok := e.LatestClose()
	if !ok {
		return model.NotAvailable
	}
	return FormatPrice(c)
}

// FormatMoney renders amount in the currency's own notation when the code is
// known, and as "12.34 XYZ" otherwise.
func FormatMoney(amount float64, code string) string {
	if code == "" || money.GetCurrency(code) == nil {
		return strings.TrimSpace(FormatPrice(amount) + " " + code)
	}
	return money.NewFromFloat(amount, code).Display()
}

// FormatQuoteTable formats the whole watchlist, one line per symbol.
func FormatQuoteTable(entries []model.WatchlistEntry) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tPRICE\tCCY\tQTY\tVALUE")
	for _, e := range entries {
		value := "-"
		if c, ok := e.LatestClose(); ok && e.Quantity > 0 {
			value = FormatMoney(c*float64(e.Quantity), e.Currency)
		}
		cur := e.Currency
		if cur == "" {
			cur = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", e.Symbol, FormatEntry(e), cur, e.Quantity, value)
	}
	w.Flush()
	return b.String()
}

// FormatChart summarises the series handed to a chart consumer.
func FormatChart(c model.ChartData) string {
	if len(c.Samples) == 0 {
		return fmt.Sprintf("%s: no price data available", c.Symbol)
	}
	var b strings.Builder
	title := c.Symbol + " close prices"
	if c.Currency != "" {
		title += " (" + c.Currency + ")"
	}
	b.WriteString(title + "\n")

	first, last := c.Samples[0], c.Samples[len(c.Samples)-1]
	b.WriteString(fmt.Sprintf("points: %d  %s → %s\n", len(c.Samples),
		first.Time.Format("2006-01-02 15:04"), last.Time.Format("15:04")))

	line := fmt.Sprintf("open %s", FormatPrice(first.Open))
	if high, low, err := calculator.SessionRange(c.Samples); err == nil {
		line += fmt.Sprintf("  high %s  low %s", FormatPrice(high), FormatPrice(low))
	}
	line += fmt.Sprintf("  last %s", FormatPrice(last.Close))
	if pct, err := calculator.ChangePercent(c.Samples); err == nil {
		line += fmt.Sprintf("  (%+.2f%%)", pct)
	}
	b.WriteString(line + "\n")

	if sma, err := calculator.CalculateSMA(calculator.Closes(c.Samples), 20); err == nil {
		b.WriteString(fmt.Sprintf("sma(20): %s\n", FormatPrice(sma)))
	}
	if rsi, err := calculator.RSI(calculator.Closes(c.Samples), 14); err == nil {
		b.WriteString(fmt.Sprintf("rsi(14): %.1f\n", rsi))
	}
	return b.String()
}

// FormatEvent formats one update event as a single line.
func FormatEvent(evt model.UpdateEvent) string {
	switch evt.Status {
	case model.StatusUpdated:
		return strings.TrimSpace(fmt.Sprintf("%s %s %s", evt.Symbol, evt.DisplayText, evt.Currency))
	case model.StatusFailed:
		return fmt.Sprintf("%s %s (%v)", evt.Symbol, model.NotAvailable, evt.Err)
	default:
		return fmt.Sprintf("%s %s", evt.Symbol, model.NotAvailable)
	}
}
