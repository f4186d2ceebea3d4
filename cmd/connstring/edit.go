package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/eduardofuncao/connstring/internal/config"
	"github.com/eduardofuncao/connstring/internal/styles"
)

func (a *App) handleEdit() {
	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = "vim"
	}

	path := a.config.Path()
	cmd := exec.Command(editorCmd, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		printError("Failed to open editor: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("Warning: Could not reload config: %v", err)
		return
	}
	a.config = cfg
	styles.InitScheme(cfg.Style.ColorScheme, cfg.Style.CustomColors)

	fmt.Println(styles.Success.Render("✓ Config file edited"))
}
