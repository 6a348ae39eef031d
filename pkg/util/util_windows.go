package util

import (
	"fmt"

	"github.com/kroppt/winfileask"
	"github.com/veandco/go-sdl2/sdl"
)

// OpenFileDialog uses a system file picker to get a filename from the user
func OpenFileDialog(win *sdl.Window) (string, error) {
	var wm *sdl.SysWMInfo
	var err error
	if wm, err = win.GetWMInfo(); err != nil {
		return "", err
	}
	info := wm.GetWindowsInfo()
	filter := winfileask.FileFilter{winfileask.Filter{}}
	str, ok, err := winfileask.GetOpenFileName(info.Window, "Open a model", filter, "")
	if !ok {
		err = fmt.Errorf("no model chosen")
	}
	if err != nil {
		return "", err
	}
	return str, nil
}
