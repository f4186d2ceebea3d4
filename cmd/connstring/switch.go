package main

import (
	"fmt"
	"os"

	"github.com/eduardofuncao/connstring/internal/styles"
)

func (a *App) handleSwitch() {
	if len(os.Args) < 3 {
		printError("Usage: connstring switch/use <profile>")
	}

	name := os.Args[2]
	if err := a.config.SwitchTo(name); err != nil {
		printError("Profile '%s' does not exist", name)
	}

	if err := a.config.Save(); err != nil {
		printError("Could not save configuration file: %v", err)
	}

	profile := a.config.Profiles[name]
	fmt.Println(styles.Success.Render("⇄ Switched to:"), styles.Title.Render(fmt.Sprintf("%s/%s", profile.Engine, name)))
}
