// =============================================================================
// Excel Shipment Converter - File Utilities
// =============================================================================
//
// This module provides small file helpers shared by the CLI:
//   - Existence and directory checks
//   - Best-effort "open with the default application" convenience
//
// AUTO-OPEN STRATEGY:
//   Instead of branching on the OS name, the opener probes the environment
//   for a known opener command (capability check) and launches the first one
//   found. If no opener is available, or launching fails, the caller simply
//   moves on — opening the result is a convenience, never a contract.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// =============================================================================
// FILE CHECKS
// =============================================================================

// FileExists reports whether a file exists at the given path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureParentDir creates the parent directory of the given path if it does
// not exist yet.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// DEFAULT-APPLICATION OPENER
// =============================================================================

// openerCommand describes a candidate command that hands a file to the
// platform's default application.
type openerCommand struct {
	// name is the executable probed with exec.LookPath.
	name string

	// args are fixed arguments placed before the file path.
	args []string
}

// openerCandidates are probed in order; the first available one is used.
var openerCandidates = []openerCommand{
	{name: "xdg-open"},                        // freedesktop
	{name: "open"},                            // macOS
	{name: "cmd", args: []string{"/c", "start", ""}}, // Windows shell
	{name: "explorer"},                        // Windows fallback
}

// CanOpenFiles reports whether the current environment has an opener
// command available.
func CanOpenFiles() bool {
	_, ok := findOpener()
	return ok
}

// OpenWithDefaultApp asks the environment to open the file with its default
// associated application. The launched process is not waited on.
//
// RETURNS:
//   - An error if no opener is available or the opener fails to start.
//     Callers treat this as advisory.
func OpenWithDefaultApp(path string) error {
	opener, ok := findOpener()
	if !ok {
		return fmt.Errorf("no file opener available in this environment")
	}

	args := append(append([]string{}, opener.args...), path)
	cmd := exec.Command(opener.name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", opener.name, err)
	}

	// Detach: the opener's lifetime is not ours to manage.
	go func() { _ = cmd.Wait() }()

	return nil
}

// findOpener probes the candidate list and returns the first command present
// on the PATH.
func findOpener() (openerCommand, bool) {
	for _, candidate := range openerCandidates {
		if _, err := exec.LookPath(candidate.name); err == nil {
			return candidate, true
		}
	}
	return openerCommand{}, false
}
