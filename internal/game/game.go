// Package game implements the demo frame update and the main loop that
// drives it.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubewalk/internal/config"
	"github.com/Faultbox/cubewalk/internal/engine/debug"
	"github.com/Faultbox/cubewalk/internal/engine/input"
	"github.com/Faultbox/cubewalk/internal/engine/renderer"
	"github.com/Faultbox/cubewalk/internal/engine/window"
	"github.com/Faultbox/cubewalk/internal/logger"
)

// Title is the window title.
const Title = "Cubewalk"

// Game is the main demo instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.State
	app      *App
	clock    FrameClock
	shots    *debug.ScreenshotCapture
	log      *zap.Logger
}

// New creates the window, renderer and application.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}

	g.log.Info("initializing game",
		zap.String("title", Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.app, err = Initialize(cfg, g.window.AspectRatio(), Assets{
		Geometry: g.renderer.Cube(),
		Material: g.renderer.Material(),
	})
	if err != nil {
		g.renderer.Close()
		g.window.Close()
		return nil, fmt.Errorf("failed to initialize scene: %w", err)
	}

	g.input = input.New()
	g.shots = debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "cubewalk")

	g.log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main loop. It returns when the window is closed or Escape
// is pressed while the pointer is free.
func (g *Game) Run() error {
	g.running = true

	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		// 1. Process input
		if g.window.PollEvents(g.input) {
			g.resize()
		}
		if g.input.QuitRequested() {
			g.running = false
			break
		}

		// 2. Update
		dt := g.clock.Delta(time.Now())
		cmd := g.app.Tick(dt, g.input)

		// 3. Render
		g.renderer.Render(&cmd)
		if g.input.ConsumeScreenshot() {
			g.screenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) screenshot() {
	pixels, width, height := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

func (g *Game) resize() {
	width, height := g.window.GetSize()
	g.renderer.Resize(width, height)
	g.app.Resize(g.window.AspectRatio())
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
