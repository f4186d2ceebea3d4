package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/eduardofuncao/connstring/internal/engine"
	"github.com/eduardofuncao/connstring/internal/styles"
)

func (a *App) handleHelp() {
	if len(os.Args) < 3 {
		a.PrintGeneralHelp()
	} else {
		a.PrintCommandHelp(os.Args[2])
	}
}

func (a *App) PrintGeneralHelp() {
	fmt.Println(
		styles.Title.Render(
			"connstring - database connection strings without the string concatenation",
		),
	)
	fmt.Println(
		styles.Faint.Render(
			"Save connection profiles and render them for PostgreSQL, SQL Server and MySQL.",
		),
	)
	fmt.Println()

	fmt.Println(styles.Title.Render("Usage"))
	fmt.Println(styles.Separator.Render("  connstring <command> [arguments]"))
	fmt.Println()

	fmt.Println(styles.Title.Render("Commands"))
	fmt.Println("  init        " + styles.Faint.Render("Create or update a profile (alias: create)"))
	fmt.Println("  switch      " + styles.Faint.Render("Switch the active profile (alias: use)"))
	fmt.Println("  list        " + styles.Faint.Render("List profiles, optionally filtered"))
	fmt.Println("  show        " + styles.Faint.Render("Render a profile's connection string (alias: render)"))
	fmt.Println("  remove      " + styles.Faint.Render("Remove a profile (alias: delete)"))
	fmt.Println("  status      " + styles.Faint.Render("Show the active profile"))
	fmt.Println("  edit        " + styles.Faint.Render("Open the config file in your editor"))
	fmt.Println("  help        " + styles.Faint.Render("Show help for connstring or a specific command"))
	fmt.Println()

	fmt.Println(styles.Title.Render("Engines"))
	fmt.Println("  " + strings.Join(engine.GetSupportedEngines(), ", "))
	fmt.Println()

	fmt.Println(styles.Title.Render("Color schemes"))
	fmt.Println("  " + strings.Join(styles.SchemeNames(), ", ") +
		styles.Faint.Render("  (style.color_scheme in the config file)"))
	fmt.Println()

	fmt.Println(styles.Title.Render("Examples"))
	fmt.Println("  connstring init dev postgres --host localhost --database app --user app")
	fmt.Println("  connstring init prod sqlserver --host sql.test.com --user user --trust-cert --timeout 30")
	fmt.Println("  connstring init")
	fmt.Println("  connstring show --ask-password --copy")
	fmt.Println("  connstring show dev --url")
	fmt.Println("  connstring list prod")
}

func (a *App) PrintCommandHelp(command string) {
	section := func(title string) {
		fmt.Println(styles.Title.Render(title))
	}

	switch strings.ToLower(command) {
	case "init", "create":
		section("Command: init")
		fmt.Println(styles.Faint.Render("Create a profile, or replace one with the same name, and make it active."))
		fmt.Println(styles.Faint.Render("Without a name or engine an interactive form opens."))
		fmt.Println()
		section("Usage")
		fmt.Println("  connstring init [name] [engine] [flags]")
		fmt.Println()
		section("Flags")
		fmt.Println("  --host <host>       " + styles.Faint.Render("Server host"))
		fmt.Println("  --port <port>       " + styles.Faint.Render("Server port, engine default when omitted"))
		fmt.Println("  --database <name>   " + styles.Faint.Render("Database name (alias: --db)"))
		fmt.Println("  --user <user>       " + styles.Faint.Render("User name"))
		fmt.Println("  --timeout <secs>    " + styles.Faint.Render("Connect timeout in seconds"))
		fmt.Println("  --sslmode <mode>    " + styles.Faint.Render("PostgreSQL sslmode"))
		fmt.Println("  --encrypt           " + styles.Faint.Render("Require an encrypted connection"))
		fmt.Println("  --trust-cert        " + styles.Faint.Render("Encrypt and trust the server certificate"))
		fmt.Println("  --param <key=value> " + styles.Faint.Render("Extra engine parameter, repeatable"))
		fmt.Println()
		fmt.Println(styles.Faint.Render("Passwords are never saved. Supply one when rendering with 'show'."))

	case "switch", "use":
		section("Command: switch")
		fmt.Println(styles.Faint.Render("Make a saved profile the active one."))
		fmt.Println()
		section("Usage")
		fmt.Println("  connstring switch <profile>")

	case "list", "ls":
		section("Command: list")
		fmt.Println(styles.Faint.Render("List saved profiles. The active profile is marked with ●."))
		fmt.Println(styles.Faint.Render("A search term filters by name, engine, host, database or user."))
		fmt.Println()
		section("Usage")
		fmt.Println("  connstring list [search]")

	case "show", "render":
		section("Command: show")
		fmt.Println(styles.Faint.Render("Render the connection string of the active or named profile."))
		fmt.Println()
		section("Usage")
		fmt.Println("  connstring show [profile] [flags]")
		fmt.Println()
		section("Flags")
		fmt.Println("  --password <pw>     " + styles.Faint.Render("Include this password"))
		fmt.Println("  --ask-password, -p  " + styles.Faint.Render("Prompt for the password without echo"))
		fmt.Println("  --url, -u           " + styles.Faint.Render("Render the postgres:// URL form (PostgreSQL only)"))
		fmt.Println("  --copy, -c          " + styles.Faint.Render("Copy the result to the clipboard"))
		fmt.Println("  --plain             " + styles.Faint.Render("Disable syntax coloring"))

	case "remove", "delete":
		section("Command: remove")
		fmt.Println(styles.Faint.Render("Delete a saved profile."))
		fmt.Println()
		section("Usage")
		fmt.Println("  connstring remove <profile>")

	case "status":
		section("Command: status")
		fmt.Println(styles.Faint.Render("Show the active profile and where it points."))

	case "edit":
		section("Command: edit")
		fmt.Println(styles.Faint.Render("Open the config file in $EDITOR (vim when unset)."))

	default:
		printError("Unknown command: %s", command)
	}
}
