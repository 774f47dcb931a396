package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Terminal-Infiltration/internal/audio"
	"github.com/Garsondee/Terminal-Infiltration/internal/config"
	"github.com/Garsondee/Terminal-Infiltration/internal/mission"
	"github.com/Garsondee/Terminal-Infiltration/internal/tui"
)

const cueVolume = 0.6

func main() {
	settings, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := settings.MissionConfig()
	if err != nil {
		log.Fatal(err)
	}

	// The screen owns stderr while running, so logs go nowhere unless verbose.
	var logOut io.Writer = io.Discard
	if settings.Verbose {
		f, err := os.Create("terminal-infiltration.log")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "[tui] ", log.LstdFlags)

	session, err := mission.NewSession(cfg, mission.NewRand(settings.Seed), mission.NewSimLog(settings.Verbose))
	if err != nil {
		log.Fatal(err)
	}

	var sound tui.CuePlayer
	if settings.Audio {
		p := audio.NewPlayer(cueVolume, logger)
		if err := p.Init(); err != nil {
			logger.Printf("audio disabled: %v", err)
		} else {
			defer p.Close()
			sound = p
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = tui.New(screen, session, sound, logger).Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
