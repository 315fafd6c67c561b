package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/goalboard/internal/app"
	"github.com/dori/goalboard/internal/catalog"
	"github.com/dori/goalboard/internal/log"
	"github.com/dori/goalboard/internal/ui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	// Subcommand handling
	if len(args) > 0 {
		switch args[0] {
		case "categories":
			return printCategories(out, args[1:])
		case "themes":
			return printThemes(out)
		case "fonts":
			return printFonts(out)
		case "resolve":
			return resolve(out, args[1:])
		case "version":
			fmt.Fprintf(out, "goalboard v%s\n", version)
			return nil
		case "help", "-h", "--help":
			printHelp(out)
			return nil
		}
	}

	// Parse flags for TUI mode
	fs := flag.NewFlagSet("goalboard", flag.ContinueOnError)
	fs.SetOutput(out)
	configFlag := fs.String("config", "", "Config file (default $XDG_CONFIG_HOME/goalboard/config.yaml)")
	themeFlag := fs.String("theme", "", "Theme (blue, purple, rose, green, orange, slate)")
	fontFlag := fs.String("font", "", "Font (inter, cal, mono, heading, handwriting)")
	schemaFlag := fs.String("schema", "", "Category schema (current, legacy)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := app.LoadConfig(*configFlag)
	if err != nil {
		return err
	}
	if err := cfg.Apply(app.Overrides{Theme: *themeFlag, Font: *fontFlag, Schema: *schemaFlag}); err != nil {
		return err
	}

	return runTUI(cfg)
}

func printHelp(out io.Writer) {
	help := `goalboard - track goals by category

Usage:
  goalboard                          Start the TUI
  goalboard categories [--schema s]  List goal categories
  goalboard themes                   List colour themes
  goalboard fonts                    List fonts
  goalboard resolve <kind> <key>     Print a descriptor as JSON
                                     (kind: category, theme, font)
  goalboard version                  Show version
  goalboard help                     Show this help

TUI Options:
  --config <path>   Config file
  --theme <name>    Theme (blue, purple, rose, green, orange, slate)
  --font <name>     Font (inter, cal, mono, heading, handwriting)
  --schema <name>   Category schema (current, legacy)

Environment:
  GOALBOARD_THEME, GOALBOARD_FONT, GOALBOARD_SCHEMA   Override the config file
  GOALBOARD_DEBUG=1                                   Log to ` + log.DefaultPath() + `

Keybindings:
  Navigation:   ↑/↓ or j/k    Move cursor
                g/G           Go to top/bottom

  Actions:      a             Add goal (tab picks category)
                enter         Edit goal
                tab           Toggle done
                d             Delete (with confirm)
                c             Cycle category
                +/-           Adjust progress

  Appearance:   ctrl+t        Cycle theme
                ctrl+f        Cycle font

  General:      ?             Help
                q             Quit`

	fmt.Fprintln(out, help)
}

func printCategories(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("categories", flag.ContinueOnError)
	fs.SetOutput(out)
	schemaFlag := fs.String("schema", "", "Category schema (current, legacy)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	schema, err := catalog.ParseSchema(*schemaFlag)
	if err != nil {
		return err
	}
	r := catalog.NewResolver(schema)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL\tICON\tCOLOR")
	for _, c := range r.Categories() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Key, c.Label, c.Icon, c.Color)
	}
	d := r.Default()
	fmt.Fprintf(w, "(%s)\t%s\t%s\t%s\n", d.Key, d.Label, d.Icon, d.Color)
	return w.Flush()
}

func printThemes(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tPRIMARY\tACCENT")
	for _, t := range catalog.Themes() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Key, t.Name, t.Primary, t.Accent)
	}
	return w.Flush()
}

func printFonts(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tFAMILY\tSTYLE")
	for _, f := range catalog.Fonts() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Key, f.Name, f.Family, f.Style)
	}
	return w.Flush()
}

func resolve(out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: goalboard resolve <category|theme|font> <key>")
	}

	var v any
	switch args[0] {
	case "category":
		v = catalog.ResolveCategory(args[1])
	case "theme":
		t, err := catalog.LookupTheme(args[1])
		if err != nil {
			return err
		}
		v = t
	case "font":
		f, err := catalog.LookupFont(args[1])
		if err != nil {
			return err
		}
		v = f
	default:
		return fmt.Errorf("unknown kind %q (want category, theme or font)", args[0])
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runTUI(cfg app.Config) error {
	if err := log.Configure(log.Config{Level: cfg.LogLevel, Path: cfg.LogFile}); err != nil {
		return err
	}

	// Create application
	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	// Create and run program
	p := tea.NewProgram(
		ui.NewRootModel(application),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
