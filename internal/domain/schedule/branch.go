package schedule

// MsgDifferentBranch is surfaced to the client instead of an error
// when the branch gate fails.
const MsgDifferentBranch = "staff works at a different branch"

// EffectiveBranch picks the explicitly requested branch, falling back
// to the caller's active branch context. Zero means no filtering.
func EffectiveBranch(requested, active uint) uint {
	if requested != 0 {
		return requested
	}
	return active
}

// BranchMatches gates slot generation and staff selection: when both
// the effective requested branch and the staff member's assignment are
// set and differ, availability must short-circuit to empty. Either
// side being unset counts as a match.
func BranchMatches(requested, active, staffBranch uint) bool {
	eff := EffectiveBranch(requested, active)
	if eff == 0 || staffBranch == 0 {
		return true
	}
	return eff == staffBranch
}
