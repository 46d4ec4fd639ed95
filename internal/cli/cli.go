package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	View   *ViewCommand
	Drill  *DrillCommand
	Back   *BackCommand
	Home   *HomeCommand
	Add    *AddCommand
	Show   *ShowCommand
	Search *SearchCommand
	Lang   *LangCommand
	Status *StatusCommand
	Purge  *PurgeCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "cochrono"
	parser.LongDescription = "Browse world history from the millennia down to single years, and record your own events."

	cmds := &commands{
		View:   &ViewCommand{globals: &globals, version: version},
		Drill:  &DrillCommand{globals: &globals, version: version},
		Back:   &BackCommand{globals: &globals, version: version},
		Home:   &HomeCommand{globals: &globals, version: version},
		Add:    &AddCommand{globals: &globals, version: version},
		Show:   &ShowCommand{globals: &globals, version: version},
		Search: &SearchCommand{globals: &globals, version: version},
		Lang:   &LangCommand{globals: &globals, version: version},
		Status: &StatusCommand{globals: &globals, version: version},
		Purge:  &PurgeCommand{globals: &globals, version: version},
	}

	parser.AddCommand("view", "Show the current timeline level", "Show the blocks of the current timeline level with their events.", cmds.View)
	parser.AddCommand("drill", "Drill into a block", "Drill into the numbered block of the current view.", cmds.Drill)
	parser.AddCommand("back", "Jump back to a breadcrumb", "Jump back to the breadcrumb with the given index, or home for the full timeline.", cmds.Back)
	parser.AddCommand("home", "Return to the full timeline", "Return to the full timeline and clear the breadcrumbs.", cmds.Home)
	parser.AddCommand("add", "Record a historical event", "Record a historical event. A missing title or year records nothing.", cmds.Add)
	parser.AddCommand("show", "Print the detail of an event", "Print the full detail of an event with its historical context.", cmds.Show)
	parser.AddCommand("search", "Search events", "Search events by keyword, with optional year and category filters.", cmds.Search)
	parser.AddCommand("lang", "Show or switch the display language", "Show the display language, or switch it with en, fr or toggle.", cmds.Lang)
	parser.AddCommand("status", "Show database statistics", "Show database statistics and the saved browsing position.", cmds.Status)
	parser.AddCommand("purge", "Delete ALL events", "Delete ALL events. Destructive operation with safety prompt.", cmds.Purge)

	return parser, &globals, cmds
}

// Run is the main entry point for the cochrono CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("cochrono %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
