package rules

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/mlavigne/checkpipe/internal/config"
	"github.com/mlavigne/checkpipe/internal/rule"
	checkpipeerrors "github.com/mlavigne/checkpipe/pkg/errors"
)

// Compile turns declarative rule definitions into an evaluation pipeline.
// Definition order is preserved, so the first declared rule is the first
// evaluated. A message set on a definition overrides the rule's default.
func Compile(defs []config.RuleDef) (rule.Pipeline[string], error) {
	compiled := make([]rule.Rule[string], 0, len(defs))

	for _, def := range defs {
		r, err := compileRule(def)
		if err != nil {
			return rule.Pipeline[string]{}, err
		}
		if def.Message != "" {
			r.Message = def.Message
		}
		compiled = append(compiled, r)
	}

	return rule.New(compiled...), nil
}

func compileRule(def config.RuleDef) (rule.Rule[string], error) {
	switch def.Type {
	case "non_empty":
		return NonEmpty(), nil
	case "digits_only":
		return DigitsOnly(), nil
	case "min_length":
		if def.MinLength == nil {
			return rule.Rule[string]{}, checkpipeerrors.NewRuleError(def.Type, errors.New("length is required"))
		}
		return MinLength(def.MinLength.Length), nil
	case "max_length":
		if def.MaxLength == nil {
			return rule.Rule[string]{}, checkpipeerrors.NewRuleError(def.Type, errors.New("length is required"))
		}
		return MaxLength(def.MaxLength.Length), nil
	case "matches":
		if def.Matches == nil {
			return rule.Rule[string]{}, checkpipeerrors.NewRuleError(def.Type, errors.New("pattern is required"))
		}
		pattern, err := regexp.Compile(def.Matches.Pattern)
		if err != nil {
			return rule.Rule[string]{}, checkpipeerrors.NewRuleError(def.Type, err)
		}
		return Matches(pattern), nil
	case "one_of":
		if def.OneOf == nil || len(def.OneOf.Values) == 0 {
			return rule.Rule[string]{}, checkpipeerrors.NewRuleError(def.Type, errors.New("values are required"))
		}
		return OneOf(def.OneOf.Values...), nil
	default:
		return rule.Rule[string]{}, checkpipeerrors.NewRuleError(def.Type, fmt.Errorf("unknown rule type %q", def.Type))
	}
}
