package renderer

import (
	"bytes"

	"github.com/etnz/finanflow"
	md "github.com/nao1215/markdown"
)

// TeamMarkdown renders the commission receivers.
func TeamMarkdown(team []finanflow.Receiver) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Equipe")
	if len(team) == 0 {
		doc.PlainText("Nenhum membro cadastrado.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Nome", "Função", "Taxa Padrão", "ID"},
		Rows:      [][]string{},
	}
	for _, r := range team {
		table.Rows = append(table.Rows, []string{r.Name, r.Role, finanflow.FormatRate(r.DefaultRate), r.ID})
	}
	doc.Table(table)
	return doc.String()
}
