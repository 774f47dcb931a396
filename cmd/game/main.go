package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Terminal-Infiltration/internal/audio"
	"github.com/Garsondee/Terminal-Infiltration/internal/config"
	"github.com/Garsondee/Terminal-Infiltration/internal/game"
	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
)

const cueVolume = 0.6

func main() {
	logger := log.New(os.Stderr, "[game] ", log.LstdFlags)

	settings, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := settings.MissionConfig()
	if err != nil {
		log.Fatal(err)
	}
	session, err := mission.NewSession(cfg, mission.NewRand(settings.Seed), mission.NewSimLog(settings.Verbose))
	if err != nil {
		log.Fatal(err)
	}

	opts := game.Options{Logger: logger}
	if settings.Audio {
		p := audio.NewPlayer(cueVolume, logger)
		if err := p.Init(); err != nil {
			logger.Printf("audio disabled: %v", err)
		} else {
			defer p.Close()
			opts.Sound = p
		}
	}

	ebiten.SetWindowTitle("Terminal Infiltration")
	ebiten.SetWindowSize(game.WindowSize(settings.Scale()))
	if err := ebiten.RunGame(game.New(session, opts)); err != nil {
		log.Fatal(err)
	}
}
