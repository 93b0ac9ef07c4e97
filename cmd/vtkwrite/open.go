package main

import (
	"fmt"
	"os/exec"
	"runtime"
)

// launchViewer opens path in the platform's default handler for .vtk files,
// detached from this process. It satisfies vtk.ViewerHook.
func launchViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching viewer for %q: %w", path, err)
	}
	// Reap the child when it exits; the export never waits on it.
	go cmd.Wait()
	return nil
}
