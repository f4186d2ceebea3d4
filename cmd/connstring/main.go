package main

import (
	"log"

	"github.com/eduardofuncao/connstring/internal/config"
	"github.com/eduardofuncao/connstring/internal/styles"
)

func main() {
	cfg, err := config.LoadConfig(config.CfgFile)
	if err != nil {
		log.Fatal("Could not load config file: ", err)
	}

	styles.InitScheme(cfg.Style.ColorScheme, cfg.Style.CustomColors)

	app := NewApp(cfg)
	app.Run()
}
