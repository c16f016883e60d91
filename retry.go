//go:build !noretry

package dangerous

import "fmt"

// retryEnabled reports whether this build computes real retry
// requirements, for [Config] to surface at runtime.
const retryEnabled = true

// RetryRequirement is a positive byte count that, if appended to the
// input, might let a failing operation succeed. The zero value is
// never observed by callers because the only constructor,
// [RetryRequirementFromHadAndNeeded], returns ok=false instead of a
// zero requirement.
type RetryRequirement struct {
	neededMore int
}

// NeededMore returns the number of additional bytes that might allow
// the operation to succeed.
func (r RetryRequirement) NeededMore() int { return r.neededMore }

// String implements fmt.Stringer.
func (r RetryRequirement) String() string {
	return fmt.Sprintf("%d more byte(s) required", r.neededMore)
}

// RetryRequirementFromHadAndNeeded builds a RetryRequirement
// describing a shortfall: had bytes were available, needed were
// required. It returns ok=false when had >= needed - including the
// had == needed case, which means the requirement was already
// satisfied and is not a retry case at all.
func RetryRequirementFromHadAndNeeded(had, needed int) (RetryRequirement, bool) {
	if had < needed {
		return RetryRequirement{neededMore: needed - had}, true
	}
	return RetryRequirement{}, false
}
