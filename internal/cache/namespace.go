package cache

// StaleNamespaces returns every namespace that must be dropped on
// activation: all of them except the current version. Pure so the teardown
// rule is testable without a store.
func StaleNamespaces(current string, all []string) []string {
	var stale []string
	for _, ns := range all {
		if ns != current {
			stale = append(stale, ns)
		}
	}
	return stale
}
