package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/privfolio/privfolio"
)

// HoldingsMarkdown renders the priced holdings table. Tickers whose price
// could not be resolved show "n/a" in the price column and zero in the
// derived columns.
func HoldingsMarkdown(r *privfolio.HoldingsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	if len(r.Holdings) == 0 {
		doc.PlainText("No holdings recorded yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Holdings))
	for _, h := range r.Holdings {
		price := notAvailable
		if h.PriceKnown {
			price = h.LastPrice.String()
		}
		rows = append(rows, []string{
			h.Ticker,
			h.Shares.String(),
			h.CostBasis.String(),
			price,
			h.MarketValue.String(),
			h.UnrealizedPnL.SignedString(),
			h.Note,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Ticker", "Shares", "Cost Basis", "Last Price", "Market Value", "Unrealized P&L", "Note"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Total Market Value: %s", r.TotalMarketValue))
	doc.PlainText(fmt.Sprintf("Total Unrealized P&L: %s", r.TotalUnrealizedPnL.SignedString()))

	return doc.String()
}
