// Package cmd implements the CLI application to manage a card wallet.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cardwise"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&adviseCmd{}, "advisor")
	c.Register(&optimizeCmd{}, "advisor")

	c.Register(&cardsCmd{}, "wallet")
	c.Register(&addCmd{}, "wallet")
	c.Register(&removeCmd{}, "wallet")
	c.Register(&walletCmd{}, "wallet")
	c.Register(&anniversaryCmd{}, "wallet")

	c.Register(&benefitsCmd{}, "benefits")
	c.Register(&claimCmd{}, "benefits")
	c.Register(&expandCmd{}, "benefits")
	c.Register(&resetCmd{}, "benefits")

	c.Register(&calendarCmd{}, "calendar")
	c.Register(&exportCmd{}, "calendar")

	c.Register(&importCmd{}, "state")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var statePath = flag.String("state-path", defaultStatePath(), "Path to the wallet state folder")

func defaultStatePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "cardwise")
	}
	return ".cardwise"
}

// LoadWallet opens the app state store and loads the wallet from it. Load
// never fails; missing or corrupt entries take their defaults.
func LoadWallet() (*cardwise.Wallet, *cardwise.Store) {
	store := cardwise.NewStore(*statePath)
	return store.Load(), store
}

// SaveWallet writes the wallet back to the app state store.
func SaveWallet(store *cardwise.Store, w *cardwise.Wallet) subcommands.ExitStatus {
	if err := store.Save(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving wallet state: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
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
