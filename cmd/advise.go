package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/finanflow/advisor"
	"github.com/etnz/finanflow/internal/logger"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type adviseCmd struct {
	timeout time.Duration
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the AI advisor for an analysis of the finances" }
func (*adviseCmd) Usage() string {
	return `ff advise [-timeout 1m]

  Sends the totals per category to a Gemini model acting as the CFO of the
  school, and prints its analysis. The API key is read from $GEMINI_API_KEY
  or $GOOGLE_API_KEY.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.timeout, "timeout", time.Minute, "Maximum time to wait for the analysis")
}

// unavailable is the generator used when no client could be created.
type unavailable struct{ err error }

func (u unavailable) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return nil, u.err
}

func (c *adviseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var gen advisor.Generator
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		gen = unavailable{fmt.Errorf("error initializing Gemini's client: %w", err)}
	} else {
		gen = client.Models
	}

	cfo := advisor.NewCFO(gen, logger.Get())
	printMarkdown(cfo.Advise(ctx, book.Ledger().Snapshot()))
	return subcommands.ExitSuccess
}
