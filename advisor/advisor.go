// Package advisor asks a generative model for a prose analysis of the ledger.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/finanflow"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Canned replies returned instead of a generated analysis.
const (
	EmptyLedgerReply = "Adicione transações para receber uma análise financeira da sua Escola de Tattoo."
	FailureReply     = "Ocorreu um erro ao tentar conectar com o consultor IA. Verifique sua conexão ou tente novamente mais tarde."
	NoAnswerReply    = "Não foi possível gerar a análise no momento."
)

const model = "gemini-2.5-flash"

// Generator generates content with a model. The Models service of a
// genai.Client implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Advisor is a financial expert answering with a single report.
type Advisor struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	gen       Generator
	log       *zap.SugaredLogger
}

// NewCFO returns the advisor acting as the chief financial officer of an
// online school.
func NewCFO(gen Generator, log *zap.SugaredLogger) *Advisor {
	return &Advisor{
		Name:      "CFO",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.7),
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{
				Text: "Você é um especialista em finanças para lançamentos digitais e escolas online.",
			}}},
		},
		gen: gen,
		log: log,
	}
}

// Advise returns a markdown analysis of txs.
//
// It never fails: an empty ledger gets EmptyLedgerReply without calling the
// model, a failed call gets FailureReply and an empty answer NoAnswerReply.
func (a *Advisor) Advise(ctx context.Context, txs []finanflow.Transaction) string {
	if len(txs) == 0 {
		return EmptyLedgerReply
	}

	resp, err := a.gen.GenerateContent(ctx, a.ModelName, genai.Text(Prompt(SummaryLines(txs))), a.Config)
	if err != nil {
		a.log.Errorw("error communicating with the advisor", "advisor", a.Name, "error", err)
		return FailureReply
	}
	text := answer(resp)
	if text == "" {
		return NoAnswerReply
	}
	return text
}

// answer concatenates the text parts of the first candidate.
func answer(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

// SummaryLines totals txs per type, category and subcategory, one line per
// group in the order groups are first met:
//
//	- INCOME - Receitas (Venda de Cursos): R$ 15000.00
func SummaryLines(txs []finanflow.Transaction) string {
	var keys []string
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		key := fmt.Sprintf("%s - %s (%s)", tx.Type, tx.Category, tx.Subcategory)
		if _, ok := totals[key]; !ok {
			keys = append(keys, key)
		}
		totals[key] = totals[key].Add(tx.Amount)
	}

	lines := make([]string, len(keys))
	for i, key := range keys {
		lines[i] = fmt.Sprintf("- %s: R$ %s", key, totals[key].StringFixed(2))
	}
	return strings.Join(lines, "\n")
}

// Prompt frames summary for the CFO.
func Prompt(summary string) string {
	return `Atue como o CFO (Diretor Financeiro) da empresa "Dica de Tattoo", uma Escola de Tatuagem Online.

Contexto da empresa:
- Negócio 100% digital (infoproduto/cursos).
- Custos principais envolvem: Tráfego Pago (Ads), Equipe (Social Media, Designer, Editor, Vendedores) e Ferramentas.
- Não há estoque físico.

Analise os dados financeiros abaixo:
` + summary + `

Forneça um relatório executivo em Markdown contendo:
1. **Saúde do Fluxo de Caixa**: Análise da relação entre CAC (custos de marketing/vendas) e Receita.
2. **Análise de Custos de Equipe/Criativos**: Estamos gastando muito com edição/design em relação ao faturamento?
3. **Sugestões de Otimização**: Onde podemos cortar custos sem perder qualidade de venda? (Ex: ferramentas, otimização de tráfego).
4. **Alertas**: Alguma categoria está consumindo mais de 30% da receita?

Mantenha um tom profissional, direto e focado em alta performance de infoprodutos.
`
}
