package terminfo

// Terminal owns the state that persists across capability executions: the
// 26 static registers (%PA../%gA..) and the delay policy a Program's DELAY
// instructions follow.
type Terminal struct {
	// DirectOutput, when true, skips DelayFunc entirely: delays become
	// no-ops, matching a raw/direct terminal connection with no pacing
	// requirement.
	DirectOutput bool

	// DisableDelays suppresses delay execution without otherwise changing
	// output; useful for tests that want deterministic, instant Exec calls.
	DisableDelays bool

	// DelayFunc is invoked for every DELAY instruction with the number of
	// milliseconds to wait (already scaled by affected-line count) and
	// whether the delay was a mandatory '/' form. A nil DelayFunc makes
	// DELAY a no-op regardless of DisableDelays.
	DelayFunc func(ms float64, mandatory bool)

	static [26]Value
}

// NewTerminal returns a Terminal with no delay policy configured; set
// DelayFunc to drive real pacing.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Reset clears all 26 static registers. Static registers persist across
// Program.Exec calls against the same Terminal by design (term(5)'s
// %PA/%gA registers are meant to carry state, e.g. a previously-set cursor
// position, between capability expansions); Reset is an explicit opt-in for
// callers that want to reuse one Terminal across unrelated expansions
// without that bleed-through.
func (t *Terminal) Reset() {
	t.static = [26]Value{}
}
