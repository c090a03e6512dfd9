// ABOUTME: Non-Unix process handling for probe commands (Windows and friends)
// ABOUTME: No process groups; timeout kills the direct child only

//go:build !unix

package process

import "os/exec"

func setProcGroup(_ *exec.Cmd) {}

func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process != nil {
		return cmd.Process.Kill()
	}
	return nil
}
