package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/colorhunt/audio"
	"github.com/lixenwraith/colorhunt/capture"
	"github.com/lixenwraith/colorhunt/config"
	"github.com/lixenwraith/colorhunt/constants"
	"github.com/lixenwraith/colorhunt/core"
	"github.com/lixenwraith/colorhunt/engine"
	"github.com/lixenwraith/colorhunt/input"
	"github.com/lixenwraith/colorhunt/render"
	"github.com/lixenwraith/colorhunt/status"
)

// Card colors offered by the virtual camera keys
var cardColors = map[input.Action]core.RGB{
	input.ActionCardRed:   core.TargetRed.Reference(),
	input.ActionCardGreen: core.TargetGreen.Reference(),
	input.ActionCardBlue:  core.TargetBlue.Reference(),
	input.ActionCardWhite: {R: 230, G: 230, B: 230},
}

// app is the terminal shell: it owns the screen, input and the current session
// All fields are touched only from the main loop goroutine
type app struct {
	cfg    *config.Config
	logger zerolog.Logger

	tscreen tcell.Screen
	screen  *render.Screen
	painter *render.Painter
	buf     *render.RenderBuffer
	keys    *input.KeyTable

	handoff *engine.IntentHandoff
	status  *status.Registry
	sound   *audio.SoundManager
	picker  *core.Picker
	clock   engine.TimeProvider

	session *engine.Session
	camera  *capture.Synthetic // nil unless the synthetic source is live

	current   *render.Intent
	lastSeq   uint64
	lastErr   string
	showDebug bool
	dirty     bool
}

func newApp(cfg *config.Config, tscreen tcell.Screen, keys *input.KeyTable, sound *audio.SoundManager, logger zerolog.Logger) *app {
	paletteSize := 0
	switch cfg.ColorMode {
	case config.Color256:
		paletteSize = cfg.PaletteSize
	case config.ColorAuto:
		if tscreen.Colors() < 1<<24 {
			paletteSize = cfg.PaletteSize
		}
	}

	picker := core.NewPicker(nil)
	if cfg.Seed != 0 {
		picker = core.NewSeededPicker(cfg.Seed)
	}

	w, h := tscreen.Size()
	a := &app{
		cfg:       cfg,
		logger:    logger,
		tscreen:   tscreen,
		screen:    render.NewScreen(tscreen),
		painter:   render.NewPainter(paletteSize),
		buf:       render.NewRenderBuffer(w, h),
		keys:      keys,
		handoff:   engine.NewIntentHandoff(),
		status:    status.NewRegistry(),
		sound:     sound,
		picker:    picker,
		clock:     engine.NewMonotonicTimeProvider(),
		showDebug: cfg.Debug,
	}
	a.showIdle()
	return a
}

// run is the main loop; returns when the player quits or the screen closes
func (a *app) run() {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	core.Go(func() { a.tscreen.ChannelEvents(events, quit) })
	defer close(quit)
	defer a.stopSession()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	a.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case <-a.handoff.Ready():
			a.draw()
		case <-frameTicker.C:
			a.draw()
		}
	}
}

// handleEvent applies one terminal event; returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tscreen.Sync()
		a.dirty = true
	case *tcell.EventKey:
		return a.handleAction(a.keys.Lookup(ev))
	}
	return true
}

func (a *app) handleAction(action input.Action) bool {
	switch action {
	case input.ActionQuit:
		return false
	case input.ActionStart:
		if a.session == nil {
			a.startSession()
		} else {
			a.session.Restart()
		}
	case input.ActionToggleSession:
		if a.session == nil {
			a.startSession()
		} else {
			a.stopSession()
			a.showIdle()
		}
	case input.ActionToggleMute:
		muted := a.sound.ToggleMute()
		a.logger.Info().Bool("muted", muted).Msg("sound toggled")
	case input.ActionToggleDebug:
		a.showDebug = !a.showDebug
		a.dirty = true
	default:
		if action.IsCard() {
			a.steerCard(action)
		}
	}
	return true
}

// steerCard moves the virtual camera card in screen space
func (a *app) steerCard(action input.Action) {
	if a.camera == nil {
		return
	}
	step := constants.SyntheticCardStep
	dx := step
	if a.cfg.Mirror {
		// Camera space is flipped relative to what the player sees
		dx = -step
	}

	switch action {
	case input.ActionCardHide:
		a.camera.HideCard()
	case input.ActionMoveLeft:
		a.camera.Move(-dx, 0)
	case input.ActionMoveRight:
		a.camera.Move(dx, 0)
	case input.ActionMoveUp:
		a.camera.Move(0, -step)
	case input.ActionMoveDown:
		a.camera.Move(0, step)
	case input.ActionGrow:
		a.camera.Resize(step / 2)
	case input.ActionShrink:
		a.camera.Resize(-step / 2)
	default:
		if c, ok := cardColors[action]; ok {
			a.camera.SetCardColor(c)
		}
	}
}

// openSource builds the configured capture chain
func (a *app) openSource() (engine.FrameSource, error) {
	var src capture.Source
	switch a.cfg.Source {
	case config.SourceImages:
		seq, err := capture.OpenSequence(a.cfg.ImagesDir, a.cfg.ImageHold)
		if err != nil {
			return nil, err
		}
		src = seq
	default:
		a.camera = capture.NewSynthetic(constants.SyntheticFrameWidth, constants.SyntheticFrameHeight, a.cfg.Seed)
		src = a.camera
	}

	if a.cfg.Mirror {
		src = capture.NewMirror(src)
	}
	return src, nil
}

func (a *app) startSession() {
	cfg := engine.SessionConfig{
		Game: engine.GameConfig{
			TotalTime:      a.cfg.TotalTime,
			RegionHalfSize: constants.RegionHalfSize,
		},
		TickInterval: a.cfg.TickInterval,
		Picker:       a.picker,
		Clock:        a.clock,
	}

	s, err := engine.NewSession(cfg, a.openSource, a.handoff, a.status, a.sound, a.logger)
	if err != nil {
		a.camera = nil
		a.lastErr = err.Error()
		a.logger.Error().Err(err).Msg("session not started")
		a.showIdle()
		return
	}

	a.lastErr = ""
	a.session = s
	s.Start()
}

func (a *app) stopSession() {
	if a.session == nil {
		return
	}
	a.session.Stop()
	a.session = nil
	a.camera = nil
	// Nothing published before this point may be shown again
	a.lastSeq = a.handoff.Seq()
}

// showIdle replaces the current intent with the start screen
func (a *app) showIdle() {
	idle := render.IdleIntent()
	if a.lastErr != "" {
		idle.Lines = append(idle.Lines, render.TextLine{
			Text:     a.lastErr,
			Anchor:   render.AnchorCenter,
			Row:      2,
			Emphasis: render.EmphasisFail,
		})
	}
	a.current = &idle
	a.dirty = true
}

// draw paints the newest intent, or repaints the current one after a resize or with the status line on
func (a *app) draw() {
	if in, ok := a.handoff.Take(a.lastSeq); ok && a.session != nil {
		a.current = in
		a.lastSeq = in.Seq
		a.dirty = true
	}

	w, h := a.screen.Size()
	if bw, bh := a.buf.Bounds(); bw != w || bh != h {
		a.buf.Resize(w, h)
		a.dirty = true
	}
	if !a.dirty && !a.showDebug {
		return
	}

	a.painter.Paint(a.buf, a.current)
	if a.showDebug {
		render.PaintStatusLine(a.buf, a.status.Line())
	}
	a.screen.Flush(a.buf)
	a.dirty = false
}
