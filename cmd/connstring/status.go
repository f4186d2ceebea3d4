package main

import (
	"fmt"

	"github.com/eduardofuncao/connstring/internal/styles"
)

func (a *App) handleStatus() {
	if a.config.CurrentProfile == "" {
		fmt.Println(styles.Faint.Render("No active profile"))
		return
	}

	profile, err := a.config.Current()
	if err != nil {
		printError("Active profile is missing from the config: %v", err)
	}

	fmt.Println(styles.Success.Render("● Currently using:"), styles.Title.Render(fmt.Sprintf("%s/%s", profile.Engine, profile.Name)))
	if address := profile.Address(); address != "" {
		fmt.Println("  host     " + styles.Faint.Render(address))
	}
	if profile.Database != "" {
		fmt.Println("  database " + styles.Faint.Render(profile.Database))
	}
	if profile.User != "" {
		fmt.Println("  user     " + styles.Faint.Render(profile.User))
	}
	fmt.Printf("  %d profiles configured\n", len(a.config.Profiles))
}
