package console

import (
	"os/exec"
	"runtime"
)

// FolderOpener opens a directory in the platform file manager. The console
// depends on this interface so tests never spawn a real file manager.
type FolderOpener interface {
	Open(path string) error
}

// SystemOpener launches the platform file manager.
type SystemOpener struct{}

// Open starts the file manager without waiting for it to exit.
func (SystemOpener) Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}

// NopOpener records the last opened path and does nothing. Tests use it.
type NopOpener struct {
	Opened []string
	Err    error
}

func (n *NopOpener) Open(path string) error {
	if n.Err != nil {
		return n.Err
	}
	n.Opened = append(n.Opened, path)
	return nil
}
