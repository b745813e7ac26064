package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finanflow"
	md "github.com/nao1215/markdown"
)

// AlertsMarkdown renders the due date alerts.
func AlertsMarkdown(alerts []finanflow.Alert, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Alertas de Vencimento")
	if len(alerts) == 0 {
		doc.PlainText("Nenhuma conta vencida ou próxima do vencimento.")
		return doc.String()
	}

	items := make([]string, len(alerts))
	for i, a := range alerts {
		items[i] = fmt.Sprintf("%s %s: %s, %s (%s)",
			alertLabel(a), a.DueDate, a.Description, signedAmount(a.Transaction, cur), a.ID)
	}
	doc.BulletList(items...)
	return doc.String()
}

func alertLabel(a finanflow.Alert) string {
	switch a.Kind {
	case finanflow.Overdue:
		if a.Days == -1 {
			return md.Bold("Vencido há 1 dia")
		}
		return md.Bold(fmt.Sprintf("Vencido há %d dias", -a.Days))
	case finanflow.DueToday:
		return md.Bold("Vence hoje")
	default:
		if a.Days == 1 {
			return "Vence amanhã"
		}
		return fmt.Sprintf("Vence em %d dias", a.Days)
	}
}
