// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/lionheart/internal/application/feature"
	"github.com/younwookim/lionheart/internal/application/replay"
	"github.com/younwookim/lionheart/internal/application/scene"
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/application/system"
	"github.com/younwookim/lionheart/internal/domain/tile"
	"github.com/younwookim/lionheart/internal/ecs"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorGround   = color.RGBA{80, 80, 100, 255}
	colorSlope    = color.RGBA{100, 100, 130, 255}
	colorSpike    = color.RGBA{200, 50, 50, 255}
	colorLiana    = color.RGBA{60, 140, 60, 255}
	colorTrigger  = color.RGBA{255, 215, 0, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorMonster  = color.RGBA{200, 100, 100, 255}
	colorEffect   = color.RGBA{255, 180, 60, 255}
	colorProbe    = color.RGBA{200, 200, 100, 200}
	colorHit      = color.RGBA{255, 60, 255, 255}
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
)

// Mode is the state of the scene around the simulation.
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
	ModeWon
	ModeLost
)

// InputSource samples the buttons held this tick.
type InputSource interface {
	GetInput() system.InputState
}

// Option configures a Playing scene.
type Option func(*Playing)

// WithRecording records every tick and saves the replay to path.
func WithRecording(path string) Option {
	return func(p *Playing) { p.recordFilename = path }
}

// WithWatcher reloads configs and stages when the watcher reports a change.
func WithWatcher(w *config.Watcher) Option {
	return func(p *Playing) { p.watcher = w }
}

// WithRate overrides the configured simulation rate, also across reloads.
func WithRate(rate int) Option {
	return func(p *Playing) { p.rate = rate }
}

// WithInput replaces the keyboard and gamepad.
func WithInput(in InputSource) Option {
	return func(p *Playing) { p.input = in }
}

// Playing is the main gameplay scene
type Playing struct {
	loader    *config.Loader
	config    *config.GameConfig
	settings  config.Settings
	stageName string
	sim       *system.Simulation
	input     InputSource
	mode      Mode
	rate      int // override, 0 keeps physics.json
	logger    *log.Logger

	screenW int
	screenH int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	watcher *config.Watcher
}

// New creates a new Playing scene on a stage.
func New(loader *config.Loader, cfg *config.GameConfig, stageName string, logger *log.Logger, opts ...Option) (*Playing, error) {
	if logger == nil {
		logger = log.Default()
	}
	p := &Playing{
		loader:    loader,
		stageName: stageName,
		input:     system.NewInputSystem(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.useConfig(cfg)
	p.screenW = p.settings.ScreenWidth
	p.screenH = p.settings.ScreenHeight

	if err := p.load(stageName); err != nil {
		return nil, err
	}
	return p, nil
}

// load replaces the simulation by a fresh one of a stage.
func (p *Playing) load(name string) error {
	stageCfg, err := p.loader.LoadStage(name)
	if err != nil {
		return err
	}
	sim, err := feature.Setup(p.config, stageCfg, nil, logSfx{p.logger}, p.logger)
	if err != nil {
		return err
	}

	p.saveRecording()
	p.sim = sim
	p.stageName = name
	p.mode = ModePlaying
	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(name, p.settings.Rate)
		p.logger.Info("recording enabled", "file", p.recordFilename, "stage", name)
	}
	p.logger.Info("stage started", "stage", name, "name", sim.Stage.Name)
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.pollWatcher()

	switch p.mode {
	case ModePlaying:
		return nil, p.updatePlaying(dt)
	case ModePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.mode = ModePlaying
		}
	case ModeLost:
		if confirm() {
			if err := p.sim.Respawn(); err != nil {
				return nil, err
			}
			p.mode = ModePlaying
		}
	case ModeWon:
		if confirm() {
			return nil, p.load(p.stageName)
		}
	}

	return nil, nil // nil = stay on this scene
}

func confirm() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func (p *Playing) updatePlaying(dt float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.mode = ModePaused
		return nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	input := p.input.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	if err := p.sim.Step(input, p.settings.Extrp(dt)); err != nil {
		return err
	}

	if next := p.sim.Checkpoint().Next; next != nil {
		p.logger.Info("checkpoint leads to stage", "stage", *next)
		return p.load(*next)
	}

	switch p.sim.Outcome() {
	case system.Won:
		if next := p.sim.Stage.Next; next != nil {
			return p.load(*next)
		}
		p.mode = ModeWon
		p.logger.Info("stage cleared", "stage", p.stageName, "ticks", p.sim.Ticks())
		p.saveRecording()
	case system.Lost:
		p.mode = ModeLost
		p.logger.Info("player died", "stage", p.stageName, "ticks", p.sim.Ticks())
		p.saveRecording()
	}
	return nil
}

// pollWatcher reloads the configs and restarts the stage when a watched file
// changed. A config that fails to load keeps the running one.
func (p *Playing) pollWatcher() {
	if p.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case file, ok := <-p.watcher.Events:
			if !ok {
				p.watcher = nil
				return
			}
			if name, ok := config.StageName(file); ok && name != p.stageName {
				continue
			}
			changed = true
			continue
		case err, ok := <-p.watcher.Errors:
			if ok {
				p.logger.Warn("watch error", "err", err)
			}
			continue
		default:
		}
		break
	}
	if changed {
		p.reload()
	}
}

func (p *Playing) reload() {
	cfg, err := p.loader.LoadAll()
	if err != nil {
		p.logger.Error("reload failed", "err", err)
		return
	}
	previous := p.config
	p.useConfig(cfg)
	if err := p.load(p.stageName); err != nil {
		p.logger.Error("reload failed", "stage", p.stageName, "err", err)
		p.useConfig(previous)
		return
	}
	p.logger.Info("configs reloaded", "stage", p.stageName)
}

// useConfig makes cfg current, applying the rate override.
func (p *Playing) useConfig(cfg *config.GameConfig) {
	if p.rate > 0 {
		cfg.Physics.Display.Rate = p.rate
	}
	p.config = cfg
	p.settings = cfg.Physics.Settings()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
	} else {
		p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

// camera returns the world position of the screen's bottom-left corner.
func (p *Playing) camera() (float64, float64) {
	m := p.sim.Stage.Map
	x, y := 0.0, 0.0
	if player, ok := p.sim.World.Player(); ok {
		x = player.Model.Transform.X - float64(p.screenW)/2
		y = player.Model.Transform.Y - float64(p.screenH)/2
	}
	x = clamp(x, 0, float64(m.PixelWidth()-p.screenW))
	y = clamp(y, 0, float64(m.PixelHeight()-p.screenH))
	return x, y
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

// toScreen converts a world rectangle (bottom-left origin, y up) to screen
// coordinates.
func (p *Playing) toScreen(camX, camY, x, y, w, h float64) (float64, float64, float64, float64) {
	return x - camX, float64(p.screenH) - (y + h - camY), w, h
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	p.drawTiles(screen, camX, camY)
	p.drawEntities(screen, camX, camY)
	if p.settings.DrawProbes && ebiten.IsKeyPressed(ebiten.KeyTab) {
		p.drawProbes(screen, camX, camY)
	}
	p.drawUI(screen)

	switch p.mode {
	case ModePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case ModeLost:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180}, "YOU DIED\n\nPress Z to restart\nfrom the checkpoint")
	case ModeWon:
		p.drawOverlay(screen, color.RGBA{0, 60, 0, 180},
			fmt.Sprintf("STAGE CLEAR\n\n%d ticks\n\nPress Z to play again", p.sim.Ticks()))
	}
}

func tileColor(g tile.Group) (color.Color, bool) {
	switch {
	case g == tile.GroupNone:
		return nil, false
	case g == tile.GroupSpike:
		return colorSpike, true
	case g == tile.GroupTrigger:
		return colorTrigger, true
	case g.IsLiana():
		return colorLiana, true
	case g.IsSlope() || g.IsSteep() || g.IsSlide():
		return colorSlope, true
	}
	return colorGround, true
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	m := p.sim.Stage.Map
	size := float64(m.TileSize)
	startX, startY := m.InTileX(camX), m.InTileY(camY)
	endX := m.InTileX(camX+float64(p.screenW)) + 1
	endY := m.InTileY(camY+float64(p.screenH)) + 1

	for ty := max(startY, 0); ty <= endY && ty < m.Height; ty++ {
		for tx := max(startX, 0); tx <= endX && tx < m.Width; tx++ {
			t, ok := m.Tile(tx, ty)
			if !ok {
				continue
			}
			c, ok := tileColor(t.Group)
			if !ok {
				continue
			}
			x, y, w, h := p.toScreen(camX, camY, t.Left(), t.Bottom(), size, size)
			if t.Group.IsLiana() {
				// lianas are drawn as their hanging line
				ebitenutil.DrawRect(screen, x, y, w, 2, c)
				continue
			}
			ebitenutil.DrawRect(screen, x, y, w, h, c)
		}
	}
}

func (p *Playing) drawEntities(screen *ebiten.Image, camX, camY float64) {
	p.sim.World.Each(func(a ecs.Actor) {
		t := a.Model.Transform
		switch a.Tag {
		case ecs.TagEffect:
			x, y, w, h := p.toScreen(camX, camY, t.X-4, t.Y-4, 8, 8)
			ebitenutil.DrawRect(screen, x, y, w, h, colorEffect)
			return
		case ecs.TagPlayer:
			p.drawActor(screen, camX, camY, a, colorPlayer)
		default:
			p.drawActor(screen, camX, camY, a, colorMonster)
		}
	})
}

func (p *Playing) drawActor(screen *ebiten.Image, camX, camY float64, a ecs.Actor, c color.RGBA) {
	// flash while hurt
	if a.Model.IsHurt() || a.States.IsState(state.Hurt) {
		c = color.RGBA{255, 255, 255, 255}
	}
	rx, ry, rw, rh := a.Rect()
	x, y, w, h := p.toScreen(camX, camY, rx, ry, rw, rh)
	ebitenutil.DrawRect(screen, x, y, w, h, c)

	// facing marker
	fx := x + w - 2
	if a.Model.IsMirrored() {
		fx = x
	}
	ebitenutil.DrawRect(screen, fx, y+2, 2, 4, colorBG)

	if p.settings.Debug {
		ebitenutil.DebugPrintAt(screen, a.States.Current().ID().String(), int(x), int(y)-14)
	}
}

func (p *Playing) drawProbes(screen *ebiten.Image, camX, camY float64) {
	p.sim.World.Each(func(a ecs.Actor) {
		m := a.Model
		for _, c := range a.Categories {
			px, py := c.Point(m.Transform.X, m.Transform.Y, m.IsMirrored())
			x, y, _, _ := p.toScreen(camX, camY, px-1, py-1, 2, 2)
			ebitenutil.DrawRect(screen, x, y, 2, 2, colorProbe)
		}
	})
	for _, h := range p.sim.Hits() {
		a, ok := p.sim.World.Get(h.Entity)
		if !ok {
			continue
		}
		m := a.Model
		px, py := h.Result.Category.Point(m.Transform.X, m.Transform.Y, m.IsMirrored())
		if h.Result.Axis == tile.AxisX {
			px = h.Result.Value
		} else {
			py = h.Result.Value
		}
		x, y, _, _ := p.toScreen(camX, camY, px-2, py-2, 4, 4)
		ebitenutil.DrawRect(screen, x, y, 4, 4, colorHit)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	barX := 10.0
	barY := float64(p.screenH - 14)
	barW := 60.0
	barH := 6.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	if player, ok := p.sim.World.Player(); ok {
		life := player.Model.Life
		ratio := float64(life.Current) / float64(max(life.Max, 1))
		ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorHealthFG)
	}

	ebitenutil.DebugPrintAt(screen, p.sim.Stage.Name, p.screenW-100, 0)
	ebitenutil.DebugPrint(screen, "Arrows: Move | Up: Jump | Space: Sword | ESC: Pause")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.watcher != nil {
		_ = p.watcher.Close()
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// Mode returns the scene mode.
func (p *Playing) Mode() Mode { return p.mode }

// Simulation returns the running simulation.
func (p *Playing) Simulation() *system.Simulation { return p.sim }

// Recorder returns the active recorder, nil when not recording.
func (p *Playing) Recorder() *replay.Recorder { return p.recorder }

// logSfx reports sound events to the debug log; the game ships no audio.
type logSfx struct{ logger *log.Logger }

func (s logSfx) Play(name string) { s.logger.Debug("sfx", "name", name) }
