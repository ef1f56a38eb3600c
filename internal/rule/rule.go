package rule

// Rule pairs a predicate with the message reported when the predicate
// rejects an input. Rules are plain values; once handed to a pipeline they
// are never modified.
type Rule[T any] struct {
	Name      string
	Message   string
	Predicate func(T) bool
}

// Check reports whether the rule accepts the input. A rule with a nil
// predicate accepts everything; a predicate that panics propagates the
// panic to the caller unmodified.
func (r Rule[T]) Check(input T) bool {
	if r.Predicate == nil {
		return true
	}
	return r.Predicate(input)
}
