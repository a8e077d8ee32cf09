package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open hands the URL to the system browser without waiting for it.
func Open(url string) error {
	var command *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		command = exec.Command("open", url)
	case "windows":
		command = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		command = exec.Command("xdg-open", url)
	}
	if err := command.Start(); err != nil {
		return fmt.Errorf("cannot open browser: %w", err)
	}
	return nil
}
