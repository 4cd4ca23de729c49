package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/privfolio/privfolio"
)

// dividendTail bounds the rendered history to the most recent payments.
const dividendTail = 20

// DividendsMarkdown renders the most recent dividend payments of a ticker.
func DividendsMarkdown(ticker string, payments []privfolio.DividendPayment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dividends for %s", ticker))
	if len(payments) == 0 {
		doc.PlainText("No dividend data returned.")
		return doc.String()
	}

	if len(payments) > dividendTail {
		payments = payments[len(payments)-dividendTail:]
	}
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{p.Date.Format("2006-01-02"), p.Amount.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Amount per Share"},
		Rows:   rows,
	})

	return doc.String()
}
