package process

import "testing"

// Real process termination is covered by browser cleanup in integration
// runs; here only the guard paths are exercised.
func TestKillTree_IgnoresInvalidPIDs(t *testing.T) {
	t.Parallel()

	for _, pid := range []int{-1, 0, 999999999} {
		KillTree(pid)
	}
}
