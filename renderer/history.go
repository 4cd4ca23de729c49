package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/privfolio/privfolio"
)

// HistoryMarkdown renders the month-by-month balance table followed by a
// small trend chart.
func HistoryMarkdown(balances *privfolio.BalanceBook) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Balance History")
	if balances.Len() == 0 {
		doc.PlainText("No months recorded yet.")
		return doc.String()
	}

	rows := make([][]string, 0, balances.Len())
	for r := range balances.Records() {
		rows = append(rows, []string{
			r.Month.Format("2006-01"),
			r.Balance.String(),
			r.Contribution.SignedString(),
			r.Note,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Balance", "Contribution", "Note"},
		Rows:   rows,
	})

	doc.H2("Trend")
	doc.CodeBlocks(md.SyntaxHighlightNone, Chart(privfolio.BalanceTrend(balances)))

	return doc.String()
}
