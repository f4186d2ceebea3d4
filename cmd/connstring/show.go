package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/eduardofuncao/connstring/internal/config"
	"github.com/eduardofuncao/connstring/internal/engine"
	"github.com/eduardofuncao/connstring/internal/parser"
	"github.com/eduardofuncao/connstring/internal/styles"
	"github.com/eduardofuncao/connstring/pkg/connstring"
)

type showFlags struct {
	name        string
	password    string
	askPassword bool
	url         bool
	copy        bool
	plain       bool
}

func parseShowFlags(args []string) (showFlags, error) {
	flags := showFlags{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !isFlag(arg) {
			if flags.name != "" {
				return showFlags{}, fmt.Errorf("unexpected argument %q", arg)
			}
			flags.name = arg
			continue
		}

		name, value, next, err := flagArg(args, i, flagName(arg) == "password")
		if err != nil {
			return showFlags{}, err
		}
		i = next

		switch name {
		case "password":
			flags.password = value
		case "ask-password", "p":
			flags.askPassword = true
		case "url", "u":
			flags.url = true
		case "copy", "c":
			flags.copy = true
		case "plain":
			flags.plain = true
		default:
			return showFlags{}, fmt.Errorf("unknown flag --%s", name)
		}
	}

	if flags.password != "" && flags.askPassword {
		return showFlags{}, fmt.Errorf("--password and --ask-password cannot be combined")
	}
	return flags, nil
}

func (a *App) handleShow() {
	flags, err := parseShowFlags(os.Args[2:])
	if err != nil {
		printError("%v", err)
	}

	var profile *config.ProfileYAML
	if flags.name != "" {
		profile, err = a.config.Profile(flags.name)
	} else {
		profile, err = a.config.Current()
	}
	if err != nil {
		printError("%v. Use 'connstring init' or 'connstring switch <profile>' first", err)
	}

	password := flags.password
	if flags.askPassword {
		password, err = promptPassword(fmt.Sprintf("Password for %s: ", profile.Name))
		if err != nil {
			printError("%v", err)
		}
	}

	out, err := renderProfile(profile, password, flags.url)
	if err != nil {
		printError("Could not render profile '%s': %v", profile.Name, err)
	}

	if flags.copy {
		if err := clipboard.WriteAll(out); err != nil {
			printError("Failed to copy to clipboard: %v", err)
		}
		fmt.Fprintln(os.Stderr, styles.Success.Render("✓ Copied to clipboard"))
	}

	if flags.plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(out)
		return
	}
	fmt.Println(highlightConnString(profile.Engine, out, flags.url))
}

// renderProfile builds the profile's connection string. asURL selects the
// postgres:// form, which only PostgreSQL profiles have.
func renderProfile(profile *config.ProfileYAML, password string, asURL bool) (string, error) {
	b, err := engine.Build(profile.Engine, profile.EngineParams(), password)
	if err != nil {
		return "", err
	}

	if !asURL {
		return b.String(), nil
	}
	pg, ok := b.(*connstring.PostgresConnectionString)
	if !ok {
		return "", fmt.Errorf("--url is only supported for %s profiles", engine.Postgres)
	}
	return pg.URL(), nil
}

func highlightConnString(engineName, s string, isURL bool) string {
	if isURL {
		return s
	}
	name, err := engine.Normalize(engineName)
	if err != nil {
		return s
	}

	switch name {
	case engine.Postgres:
		return parser.HighlightConnString(s, " ", false)
	case engine.SQLServer:
		return parser.HighlightConnString(s, ";", true)
	default:
		return s
	}
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprintln(os.Stderr)
	return string(passwordBytes), nil
}
