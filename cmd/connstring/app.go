package main

import (
	"fmt"
	"os"

	"github.com/eduardofuncao/connstring/internal/config"
	"github.com/eduardofuncao/connstring/internal/styles"
)

type App struct {
	config *config.Config
}

func NewApp(cfg *config.Config) *App {
	return &App{
		config: cfg,
	}
}

func (a *App) Run() {
	if len(os.Args) < 2 {
		a.printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "init", "create":
		a.handleInit()
	case "switch", "use":
		a.handleSwitch()
	case "list", "ls":
		a.handleList()
	case "show", "render":
		a.handleShow()
	case "remove", "delete":
		a.handleRemove()
	case "status":
		a.handleStatus()
	case "edit":
		a.handleEdit()
	case "help", "--help", "-h":
		a.handleHelp()
	default:
		printError("Unknown command: %s. Run 'connstring help' for usage", command)
	}
}

func (a *App) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("connstring init [name] [engine] [--host h] [--port p] [--database d] [--user u]")
	fmt.Println("connstring switch <profile>")
	fmt.Println("connstring list [search]")
	fmt.Println("connstring show [profile] [--ask-password] [--url] [--copy]")
	fmt.Println("connstring help [command]")
}

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, styles.Error.Render("✗ Error:"), msg)
	os.Exit(1)
}
