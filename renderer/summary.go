package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/privfolio/privfolio"
)

// DashboardMarkdown renders the top-level summary.
func DashboardMarkdown(d *privfolio.Dashboard, trend []privfolio.TrendPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Summary")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Current Balance", d.CurrentBalance.String()},
			{"Holdings Value", d.HoldingsValue.String()},
			{"Net Contributions", d.NetContributions.SignedString()},
			{"Months Tracked", fmt.Sprintf("%d", d.Months)},
		},
	})

	if len(trend) > 0 {
		doc.H2("Trend")
		doc.CodeBlocks(md.SyntaxHighlightNone, Chart(trend))
	}

	return doc.String()
}
