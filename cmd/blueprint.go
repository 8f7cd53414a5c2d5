package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
	"github.com/luminary-app/luminary/renderer"
	"golang.org/x/term"
)

type blueprintCmd struct{}

func (*blueprintCmd) Name() string     { return "blueprint" }
func (*blueprintCmd) Synopsis() string { return "view or rewrite the manifesto" }
func (*blueprintCmd) Usage() string {
	return `lum blueprint view
lum blueprint edit

  Views the password-gated manifesto, or rewrites it from stdin. The
  manifesto can be rewritten at most three times ever; the count never
  resets.
`
}

func (*blueprintCmd) SetFlags(f *flag.FlagSet) {}

func (c *blueprintCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, _, err := openDashboard()
	if err != nil {
		return fail(err)
	}
	if !unlock(d.Blueprint) {
		fmt.Fprintln(os.Stderr, "Access denied.")
		return subcommands.ExitFailure
	}

	switch f.Arg(0) {
	case "", "view":
		data, err := d.Blueprint.Data()
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.RenderBlueprint(renderer.NewBlueprintView(data)))

	case "edit":
		if err := d.Blueprint.StartEdit(); err != nil {
			if errors.Is(err, luminary.ErrEditsExhausted) {
				fmt.Fprintln(os.Stderr, "All edits are spent; the blueprint is now permanent.")
				return subcommands.ExitFailure
			}
			return fail(err)
		}
		fmt.Fprintln(os.Stderr, "Enter the new manifesto, end with Ctrl-D:")
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fail(err)
		}
		if err := d.Blueprint.SetDraft(strings.TrimRight(string(content), "\n")); err != nil {
			return fail(err)
		}
		data, err := d.Blueprint.Save()
		if err != nil {
			return fail(err)
		}
		if err := d.Commit(luminary.KeyBlueprint); err != nil {
			return fail(err)
		}
		fmt.Printf("Saved. %d edit(s) remaining.\n", luminary.MaxEdits-data.EditCount)

	default:
		return usage("expected one of: view, edit")
	}
	return subcommands.ExitSuccess
}

// unlock prompts for the password and tries it against the gate. The prompt
// hides input on a real terminal and falls back to a plain line otherwise.
func unlock(b *luminary.Blueprint) bool {
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		var line string
		fmt.Fscanln(os.Stdin, &line)
		return b.Unlock(line)
	}
	return b.Unlock(string(raw))
}
