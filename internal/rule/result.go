package rule

// Status classifies the outcome of evaluating a pipeline.
type Status string

const (
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
)

// Result captures the outcome of evaluating one input against a pipeline.
// A valid result carries no message; an invalid result carries the message
// of the first rule that rejected the input, never more than one.
type Result struct {
	Status  Status
	Rule    string
	Message string
}

// Valid returns the result for an accepted input.
func Valid() Result {
	return Result{Status: StatusValid}
}

// Invalid returns the result for an input rejected by the named rule.
func Invalid(name, message string) Result {
	return Result{Status: StatusInvalid, Rule: name, Message: message}
}

// IsValid reports whether the input was accepted.
func (r Result) IsValid() bool {
	return r.Status == StatusValid
}

// FormatMessage returns a human-readable summary of the result.
func (r Result) FormatMessage() string {
	if r.IsValid() {
		return string(StatusValid)
	}
	return r.Message
}
