package util

import (
	"fmt"

	"github.com/jcmuller/gozenity"
	"github.com/veandco/go-sdl2/sdl"
)

// OpenFileDialog uses a system file picker to get a filename from the user
func OpenFileDialog(win *sdl.Window) (string, error) {
	files, err := gozenity.FileSelection("Choose a model to open", nil)
	if err != nil {
		return "", err
	}
	return firstSelection(files)
}

// firstSelection guards against a cancelled dialog, which can yield no
// filenames and no error.
func firstSelection(files []string) (string, error) {
	if len(files) == 0 {
		return "", fmt.Errorf("no model chosen")
	}
	return files[0], nil
}
