package render

import (
	"os/exec"
	"runtime"
)

// Open displays the exported image with the platform's default viewer.
// The viewer process is started and not waited on.
func Open(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	return cmd.Start()
}
