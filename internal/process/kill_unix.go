//go:build !windows

package process

import "syscall"

// KillTree sends SIGKILL to the process group led by pid, reaching the
// renderer and GPU helpers Chrome forks. Non-positive pids are ignored.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
