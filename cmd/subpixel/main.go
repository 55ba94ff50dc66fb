package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"subpixel/internal/app"
	"subpixel/internal/assets"
	"subpixel/internal/config"
	"subpixel/internal/sfx"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Subpixel config failed: %v\n", err)
		os.Exit(2)
	}
	app.SetupLogging(cfg.Debug)

	var skin *assets.Skin
	if cfg.Builtin {
		skin = assets.Builtin()
	} else if skin, err = assets.Load(cfg.AssetDir); err != nil {
		fmt.Fprintf(os.Stderr, "Subpixel assets failed: %v\n", err)
		os.Exit(1)
	}

	var sounds *sfx.Player
	if cfg.Sound {
		bank, err := sfx.LoadBank(cfg.AssetDir, app.TraySounds[:]...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		sounds = sfx.NewPlayer(bank, 0.5)
	}

	if err := app.New(cfg, skin, sounds).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Subpixel failed: %v\n", err)
		os.Exit(1)
	}
}
