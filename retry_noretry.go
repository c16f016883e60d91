//go:build noretry

package dangerous

// retryEnabled reports whether this build computes real retry
// requirements, for [Config] to surface at runtime.
const retryEnabled = false

// RetryRequirement is the noretry-tag stand-in: the retry feature is
// compiled out, so every classification collapses to fatal and this
// type can never be constructed with ok=true.
type RetryRequirement struct{}

func (r RetryRequirement) NeededMore() int { return 0 }
func (r RetryRequirement) String() string  { return "retry disabled" }

// RetryRequirementFromHadAndNeeded always reports ok=false: the
// noretry build treats every shortfall as fatal.
func RetryRequirementFromHadAndNeeded(had, needed int) (RetryRequirement, bool) {
	return RetryRequirement{}, false
}
