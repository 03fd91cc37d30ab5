package viewer

import (
	"errors"
	"path/filepath"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"
)

// openFileDialog shows the native file picker without blocking the render
// loop. The chosen path, or "" when nothing was chosen, is sent on results.
func openFileDialog(results chan<- string, startDir string, log *zap.Logger) {
	go func() {
		b := dialog.File().
			Filter("STL Meshes", "stl").
			Filter("All Files", "*").
			Title("Open Mesh")
		if startDir != "" {
			b = b.SetStartDir(startDir)
		}

		filename, err := b.Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				log.Warn("file dialog failed", zap.Error(err))
			}
			results <- ""
			return
		}
		results <- filename
	}()
}

// dialogStartDir opens the dialog next to the current mesh.
func dialogStartDir(current string) string {
	if current == "" {
		return ""
	}
	return filepath.Dir(current)
}
