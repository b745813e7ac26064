package renderer

import (
	"encoding/csv"
	"io"

	"github.com/etnz/finanflow"
	"github.com/etnz/finanflow/date"
)

var csvHeader = []string{"Vencimento", "Status", "Descrição", "Categoria", "Subcategoria", "Tipo", "Valor", "Data Lançamento"}

// CSVFileName is the name of the spreadsheet exported on day d.
func CSVFileName(d date.Date) string {
	return "DicaDeTattoo_Financeiro_" + d.String() + ".csv"
}

// WriteCSV writes txs as a spreadsheet, one row per transaction.
func WriteCSV(w io.Writer, txs []finanflow.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		err := cw.Write([]string{
			tx.DueDate.String(),
			string(tx.Status),
			tx.Description,
			tx.Category,
			tx.Subcategory,
			string(tx.Type),
			tx.Amount.StringFixed(2),
			tx.Date.String(),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
