package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finanflow"
	"github.com/etnz/finanflow/renderer"
	"github.com/google/subcommands"
)

type teamCmd struct{}

func (*teamCmd) Name() string     { return "team" }
func (*teamCmd) Synopsis() string { return "list the commission receivers" }
func (*teamCmd) Usage() string {
	return `ff team

  Lists the team members entitled to commissions, with their default rate.
`
}

func (*teamCmd) SetFlags(_ *flag.FlagSet) {}

func (*teamCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	printMarkdown(renderer.TeamMarkdown(book.Team().Snapshot()))
	return subcommands.ExitSuccess
}

type addMemberCmd struct {
	name string
	role string
	rate string
}

func (*addMemberCmd) Name() string     { return "add-member" }
func (*addMemberCmd) Synopsis() string { return "register a commission receiver" }
func (*addMemberCmd) Usage() string {
	return `ff add-member -name <name> [-role <role>] [-rate <percent>]
`
}

func (c *addMemberCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the team member")
	f.StringVar(&c.role, "role", finanflow.Roles[0], fmt.Sprintf("Role, one of %q or any other label", finanflow.Roles))
	f.StringVar(&c.rate, "rate", "0", "Default commission rate in percent")
}

func (c *addMemberCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := finanflow.ParseRate(c.rate)
	if err != nil {
		return fail(err)
	}
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	r, err := book.AddReceiver(finanflow.Receiver{Name: c.name, Role: c.role, DefaultRate: rate})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Registered %s (%s) at %s with id %s\n", r.Name, r.Role, finanflow.FormatRate(r.DefaultRate), r.ID)
	return subcommands.ExitSuccess
}

type rmMemberCmd struct {
	yes bool
}

func (*rmMemberCmd) Name() string     { return "rm-member" }
func (*rmMemberCmd) Synopsis() string { return "remove a commission receiver" }
func (*rmMemberCmd) Usage() string {
	return `ff rm-member [-y] <id>

  Removes a team member. Commissions already launched for them are kept.
`
}

func (c *rmMemberCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *rmMemberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: rm-member takes exactly one receiver id.")
		return subcommands.ExitUsageError
	}
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	r, err := book.Receiver(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	if !c.yes && !confirm(os.Stdin, fmt.Sprintf("Remove %s from the team?", r.Name)) {
		return subcommands.ExitSuccess
	}
	book.RemoveReceiver(r.ID)
	fmt.Printf("Removed %s\n", r.Name)
	return subcommands.ExitSuccess
}
