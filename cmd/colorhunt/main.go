package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/colorhunt/audio"
	"github.com/lixenwraith/colorhunt/config"
	"github.com/lixenwraith/colorhunt/core"
	"github.com/lixenwraith/colorhunt/input"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "usage: colorhunt [flags]; settings may also come from .env or COLORHUNT_* variables")
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "colorhunt: %v\n", err)
		return 2
	}

	keys := input.DefaultKeyTable()
	if err := keys.Bind(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "colorhunt: %v\n", err)
		return 2
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "colorhunt: stdout is not a terminal")
		return 1
	}

	logger, logFile := setupLogging(cfg.Debug, cfg.LogDir, cfg.Level())
	if logFile != nil {
		defer logFile.Close()
	}

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = !cfg.Mute
	audioCfg.MasterVolume = float64(cfg.Volume) / 100
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("continuing without audio")
	}
	defer sound.Cleanup()

	tscreen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "colorhunt: create screen: %v\n", err)
		return 1
	}
	if err := tscreen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "colorhunt: init screen: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer tscreen.Fini()
	// Engine goroutines restore the terminal before printing a crash
	core.SetCrashCleanup(tscreen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	tscreen.HideCursor()
	logger.Info().
		Str("source", cfg.Source).
		Str("color", cfg.ColorMode).
		Int("colors", tscreen.Colors()).
		Msg("colorhunt started")

	newApp(cfg, tscreen, keys, sound, logger).run()
	return 0
}
