package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SchemaError captures rules-file validation issues.
type SchemaError struct {
	Field   string
	Message string
	Err     error
}

// NewSchemaError constructs a SchemaError.
func NewSchemaError(field, message string, err error) error {
	return &SchemaError{Field: field, Message: message, Err: err}
}

func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("schema error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *SchemaError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RuleError indicates a rule definition that cannot be compiled.
type RuleError struct {
	RuleType string
	Message  string
	Err      error
}

// NewRuleError constructs a RuleError for the given rule type.
func NewRuleError(ruleType string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RuleError{RuleType: ruleType, Message: message, Err: err}
}

func (e *RuleError) Error() string {
	if e == nil {
		return ""
	}
	if e.RuleType != "" {
		return fmt.Sprintf("rule error [%s]: %s", e.RuleType, e.Message)
	}
	return fmt.Sprintf("rule error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PipelineError reports a problem selecting a pipeline from a rules file.
type PipelineError struct {
	PipelineID string
	Message    string
	Err        error
}

// NewPipelineError constructs a PipelineError for the given pipeline id.
func NewPipelineError(pipelineID, message string, err error) error {
	return &PipelineError{PipelineID: pipelineID, Message: message, Err: err}
}

func (e *PipelineError) Error() string {
	if e == nil {
		return ""
	}
	if e.PipelineID != "" {
		return fmt.Sprintf("pipeline error [%s]: %s", e.PipelineID, e.Message)
	}
	return fmt.Sprintf("pipeline error: %s", e.Message)
}

// Unwrap exposes the root error.
func (e *PipelineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
