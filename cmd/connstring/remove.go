package main

import (
	"fmt"
	"os"

	"github.com/eduardofuncao/connstring/internal/styles"
)

func (a *App) handleRemove() {
	if len(os.Args) < 3 {
		printError("Usage: connstring remove <profile>")
	}

	name := os.Args[2]
	wasActive := a.config.CurrentProfile == name
	if err := a.config.RemoveProfile(name); err != nil {
		printError("Profile '%s' could not be found", name)
	}

	if err := a.config.Save(); err != nil {
		printError("Could not save configuration file: %v", err)
	}

	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Removed profile '%s'", name)))
	if wasActive {
		fmt.Println(styles.Faint.Render("No active profile. Use 'connstring switch <profile>' to pick one"))
	}
}
