package viewer

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/engine/transform"
	"github.com/Faultbox/meshview/internal/engine/window"
	"github.com/Faultbox/meshview/internal/logger"
)

// App is the interactive viewer: one window, one session.
type App struct {
	config *config.Config

	window   *window.Window
	renderer *renderer.MeshRenderer
	input    *input.Input
	session  *Session
	watcher  *FileWatcher

	dialogResults chan string
	dialogOpen    bool

	screenshots  *debug.ScreenshotCapture
	captureFrame bool

	log *zap.Logger
}

// New creates the window, the GL renderer and an empty session. Any failure
// here is fatal; nothing is left open on error.
func New(cfg *config.Config) (*App, error) {
	app := &App{
		config:        cfg,
		input:         input.New(),
		dialogResults: make(chan string, 1),
		screenshots:   debug.NewScreenshotCapture(cfg.Data.ScreenshotDir, "meshview"),
		log:           logger.Named("app"),
	}

	var err error
	app.window, err = window.New(windowConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	app.renderer, err = renderer.New(rendererConfig(cfg))
	if err != nil {
		app.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	width, height := app.window.DrawableSize()
	app.session = NewSession(app.renderer, cameraSettings(cfg), projection(cfg),
		transform.Viewport{Width: width, Height: height})

	if cfg.Data.Watch {
		app.watcher, err = NewFileWatcher()
		if err != nil {
			app.log.Warn("file watching disabled", zap.Error(err))
			app.watcher = nil
		}
	}

	app.log.Info("viewer ready", zap.String("session", app.session.ID))
	return app, nil
}

// Run loads the configured mesh, if any, and runs the render loop until
// the window is closed or Escape is pressed.
func (a *App) Run() error {
	if path := a.config.Data.MeshPath; path != "" {
		a.open(path)
	}

	for {
		if a.window.PollEvents(a.input) {
			return nil
		}

		for _, e := range a.input.Events() {
			switch e.Type {
			case input.EventKeyDown:
				switch e.Key {
				case input.KeyEscape:
					return nil
				case input.KeyO:
					a.showDialog()
				case input.KeyR:
					a.session.ResetCamera()
				case input.KeyS:
					a.captureFrame = true
				}
			case input.EventDropFile:
				a.open(e.Path)
			default:
				a.session.HandleEvent(e)
			}
		}

		a.drainPending()

		if a.session.Frame() && a.captureFrame {
			a.captureFrame = false
			a.saveScreenshot()
		}
		a.window.SwapBuffers()
	}
}

// Close releases the watcher, the renderer and the window.
func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing watcher", zap.Error(err))
		}
	}
	a.renderer.Close()
	a.window.Close()
}

// drainPending handles paths delivered by the dialog and the watcher
// since the last frame.
func (a *App) drainPending() {
	var changes <-chan string
	if a.watcher != nil {
		changes = a.watcher.Changes()
	}

	for {
		select {
		case path := <-a.dialogResults:
			a.dialogOpen = false
			if path != "" {
				a.open(path)
			}
		case path := <-changes:
			a.log.Debug("mesh changed on disk", zap.String("path", path))
			a.reload(path)
		default:
			return
		}
	}
}

// saveScreenshot writes the frame just drawn to a PNG.
func (a *App) saveScreenshot() {
	vp := a.session.Viewport()
	path, err := a.screenshots.CaptureFromPixels(a.renderer.ReadPixels(vp), vp.Width, vp.Height)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func (a *App) showDialog() {
	if a.dialogOpen {
		return
	}
	a.dialogOpen = true
	openFileDialog(a.dialogResults, dialogStartDir(a.session.Path()), a.log)
}

// open loads a mesh chosen by the user and starts watching it.
func (a *App) open(path string) {
	if err := a.session.LoadFile(path); err != nil {
		a.log.Error("failed to open mesh", zap.Error(err))
		return
	}

	a.window.SetTitle(fmt.Sprintf("%s - %s", a.config.Window.Title, filepath.Base(a.session.Path())))

	if a.watcher != nil {
		if err := a.watcher.Watch(a.session.Path()); err != nil {
			a.log.Warn("cannot watch mesh", zap.String("path", a.session.Path()), zap.Error(err))
		}
	}
}

// reload re-reads the watched mesh. A half-written file fails to decode and
// the previous mesh stays until the next change.
func (a *App) reload(path string) {
	if path != a.session.Path() {
		return
	}
	if err := a.session.LoadFile(path); err != nil {
		a.log.Debug("reload skipped", zap.Error(err))
	}
}
