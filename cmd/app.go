// Package cmd implements the CLI application to manage the finances of an online school.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finanflow"
	"github.com/etnz/finanflow/internal/logger"
	"github.com/etnz/finanflow/sqlstore"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application, with their group.
var Commands = []struct {
	Command subcommands.Command
	Group   string
}{
	{&addCmd{}, "transactions"},
	{&editCmd{}, "transactions"},
	{&rmCmd{}, "transactions"},
	{&toggleCmd{}, "transactions"},
	{&txCmd{}, "transactions"},
	{&importCmd{}, "transactions"},

	{&summaryCmd{}, "reports"},
	{&alertsCmd{}, "reports"},
	{&monthlyCmd{}, "reports"},
	{&categoriesCmd{}, "reports"},
	{&exportCmd{}, "reports"},
	{&reportCmd{}, "reports"},
	{&queryCmd{}, "reports"},
	{&adviseCmd{}, "reports"},

	{&teamCmd{}, "commissions"},
	{&addMemberCmd{}, "commissions"},
	{&rmMemberCmd{}, "commissions"},
	{&commissionCmd{}, "commissions"},
	{&historyCmd{}, "commissions"},
	{&batchCmd{}, "commissions"},

	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd.Command, cmd.Group)
	}
}

// OpenBook opens the book in the configured store. The returned function
// releases the store.
func OpenBook() (*finanflow.Book, func(), error) {
	cfg := Settings()
	logger.Init(cfg.Env)
	log := logger.Get()

	var store finanflow.Store
	release := func() {}
	switch cfg.Store {
	case "file":
		store = finanflow.NewDirStore(cfg.Data)
	case "sqlite":
		s, err := sqlstore.Open(cfg.Data)
		if err != nil {
			return nil, nil, err
		}
		store = s
		release = func() {
			if err := s.Close(); err != nil {
				log.Warnw("could not close database", "error", err)
			}
		}
	default:
		return nil, nil, fmt.Errorf("unknown store %q, want file or sqlite", cfg.Store)
	}

	log.Debugw("opening book", "store", cfg.Store, "data", cfg.Data)
	b := finanflow.Open(store, finanflow.WithLogger(log), finanflow.WithClock(today))
	return b, func() { release(); logger.Sync() }, nil
}

// currency returns the display currency.
func currency() string { return Settings().Currency }

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(in io.Reader, question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}

// fail prints err and returns the matching exit status: rejected user input
// is a usage error.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	if finanflow.IsValidationError(err) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
