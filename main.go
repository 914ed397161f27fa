package main

import (
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/danmaku/content"
	"github.com/milk9111/danmaku/sim"
)

func main() {
	character := flag.String("character", "mari", "playable character key")
	stage := flag.String("stage", "stage1", "stage script to run")
	contentDir := flag.String("content", "", "content directory overriding embedded data (enables hot reload)")
	seed := flag.Int64("seed", 0, "rng seed for drop scatter (0 uses the clock)")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if *contentDir != "" {
		content.SetDir(*contentDir)
	}
	regs, err := content.Load(log)
	if err != nil {
		log.WithError(err).Fatal("content load failed")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	s, err := sim.New(regs, sim.Config{
		Character: *character,
		Stage:     *stage,
		Seed:      *seed,
		Log:       log,
	})
	if err != nil {
		log.WithError(err).Fatal("simulation setup failed")
	}

	game := NewGame(s, log)

	if *contentDir != "" {
		watcher, err := content.NewWatcher(*contentDir)
		if err != nil {
			log.WithError(err).Warn("content watch unavailable")
		} else {
			defer watcher.Close()
			go func() {
				for range watcher.Events {
					if err := content.LoadInto(regs, log); err != nil {
						log.WithError(err).Error("content reload failed")
					}
				}
			}()
		}
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("danmaku")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("game loop exited")
	}
}
