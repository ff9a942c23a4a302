package safety

import "sync/atomic"

// Store holds the current rule set behind an atomic pointer, so rule
// reloads never expose partial state to in-flight requests.
type Store struct {
	current atomic.Pointer[RuleSet]
}

// NewStore creates a store. A nil rule set falls back to the empty set.
func NewStore(rs *RuleSet) *Store {
	st := &Store{}
	if rs == nil {
		rs = EmptyRuleSet()
	}
	st.current.Store(rs)
	return st
}

// Current returns the rule set in effect right now.
func (st *Store) Current() *RuleSet {
	return st.current.Load()
}

// Swap publishes a new rule set and returns the one it replaced.
func (st *Store) Swap(rs *RuleSet) *RuleSet {
	if rs == nil {
		return st.current.Load()
	}
	return st.current.Swap(rs)
}
