package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rxtech-lab/argo-indexes/internal/loader"
	"github.com/rxtech-lab/argo-indexes/pkg/marketdata"
)

var (
	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	// CellStyle pads table cells.
	CellStyle = lipgloss.NewStyle().Padding(0, 1)

	// ErrorStyle is used for the final error line.
	ErrorStyle = lipgloss.NewStyle().Bold(true)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}

			return CellStyle
		})
}

// summaryTable shows the last value of each derived series per index.
func summaryTable(l *loader.Loader) string {
	window := l.Window()
	t := newTable("Index", "Ticker", "Rows", "Last log return",
		"Volatility ("+strconv.Itoa(l.VolatilityWindow())+")")

	for _, index := range l.Indexes() {
		lastReturn := "-"
		if n := len(index.DailyLogReturn); n > 0 {
			lastReturn = strconv.FormatFloat(index.DailyLogReturn[n-1].Value, 'f', 6, 64)
		}

		lastVolatility := "-"
		if n := len(index.Volatility); n > 0 {
			lastVolatility = strconv.FormatFloat(index.Volatility[n-1].Value, 'f', 4, 64)
		}

		t.Row(index.Name, index.Ticker, strconv.Itoa(len(index.Prices)), lastReturn, lastVolatility)
	}

	return window.StartText + " .. " + window.EndText + "\n" + t.String()
}

func providersTable(infos []marketdata.ProviderInfo) string {
	t := newTable("Name", "Provider", "Auth", "Example ticker", "Description")

	for _, info := range infos {
		auth := "no"
		if info.RequiresAuth {
			auth = "yes"
		}

		t.Row(info.Name, info.DisplayName, auth, info.TickerExample, info.Description)
	}

	return t.String()
}
