package rule

// Pipeline is an ordered, immutable sequence of rules evaluated against one
// input with first-failure semantics. The zero value is an empty pipeline
// and accepts every input.
type Pipeline[T any] struct {
	rules []Rule[T]
}

// New constructs a pipeline from the given rules. The slice is copied, so
// later mutation of the caller's slice does not affect the pipeline.
func New[T any](rules ...Rule[T]) Pipeline[T] {
	copied := make([]Rule[T], len(rules))
	copy(copied, rules)
	return Pipeline[T]{rules: copied}
}

// Evaluate classifies the input. Rules run in construction order; the first
// rule whose predicate rejects the input decides the result and later rules
// are not consulted. Evaluation is a pure function of (rules, input): it
// mutates nothing and is safe for concurrent use.
func (p Pipeline[T]) Evaluate(input T) Result {
	for _, r := range p.rules {
		if !r.Check(input) {
			return Invalid(r.Name, r.Message)
		}
	}
	return Valid()
}

// Len returns the number of rules in the pipeline.
func (p Pipeline[T]) Len() int {
	return len(p.rules)
}

// Rules returns a defensive copy of the rule sequence.
func (p Pipeline[T]) Rules() []Rule[T] {
	copied := make([]Rule[T], len(p.rules))
	copy(copied, p.rules)
	return copied
}
