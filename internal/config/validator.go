package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	checkpipeerrors "github.com/mlavigne/checkpipe/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	versionPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	pipelineIDPattern = regexp.MustCompile(`^[a-z0-9_]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("schema_version", func(fl validator.FieldLevel) bool {
			return versionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("pipeline_id", func(fl validator.FieldLevel) bool {
			return pipelineIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on a rules
// document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return checkpipeerrors.NewSchemaError("document", "rules document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(doc.Pipelines))
	for i, pipeline := range doc.Pipelines {
		if _, exists := seen[pipeline.ID]; exists {
			return checkpipeerrors.NewSchemaError(fieldForPipeline(i, "id"), fmt.Sprintf("duplicate pipeline id %q", pipeline.ID), nil)
		}
		seen[pipeline.ID] = struct{}{}

		for j, rule := range pipeline.Rules {
			if err := validateRule(rule, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateRule(rule RuleDef, pipelineIndex, ruleIndex int) error {
	v := validatorInstance()

	switch rule.Type {
	case "non_empty", "digits_only":
		// No parameters.
	case "min_length":
		if rule.MinLength == nil {
			return checkpipeerrors.NewSchemaError(fieldForRule(pipelineIndex, ruleIndex, "length"), "length is required", nil)
		}
		if err := v.Struct(rule.MinLength); err != nil {
			return convertValidationError(err)
		}
	case "max_length":
		if rule.MaxLength == nil {
			return checkpipeerrors.NewSchemaError(fieldForRule(pipelineIndex, ruleIndex, "length"), "length is required", nil)
		}
		if err := v.Struct(rule.MaxLength); err != nil {
			return convertValidationError(err)
		}
	case "matches":
		if rule.Matches == nil {
			return checkpipeerrors.NewSchemaError(fieldForRule(pipelineIndex, ruleIndex, "pattern"), "pattern is required", nil)
		}
		if err := v.Struct(rule.Matches); err != nil {
			return convertValidationError(err)
		}
		if _, err := regexp.Compile(rule.Matches.Pattern); err != nil {
			return checkpipeerrors.NewSchemaError(fieldForRule(pipelineIndex, ruleIndex, "pattern"), fmt.Sprintf("invalid pattern: %v", err), err)
		}
	case "one_of":
		if rule.OneOf == nil {
			return checkpipeerrors.NewSchemaError(fieldForRule(pipelineIndex, ruleIndex, "values"), "values are required", nil)
		}
		if err := v.Struct(rule.OneOf); err != nil {
			return convertValidationError(err)
		}
	default:
		return checkpipeerrors.NewSchemaError(fieldForRule(pipelineIndex, ruleIndex, "type"), fmt.Sprintf("unknown rule type %q", rule.Type), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return checkpipeerrors.NewSchemaError(field, msg, err)
	}

	return checkpipeerrors.NewSchemaError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForPipeline(index int, field string) string {
	return fmt.Sprintf("pipelines[%d].%s", index, field)
}

func fieldForRule(pipelineIndex, ruleIndex int, field string) string {
	return fmt.Sprintf("pipelines[%d].rules[%d].%s", pipelineIndex, ruleIndex, field)
}
