package config

import (
	"gopkg.in/yaml.v3"
)

// Document represents a full checkpipe rules file.
type Document struct {
	Version     string        `yaml:"version" validate:"required,schema_version"`
	Name        string        `yaml:"name" validate:"required,min=1,max=100"`
	Description string        `yaml:"description,omitempty"`
	Pipelines   []PipelineDef `yaml:"pipelines" validate:"required,min=1,dive"`
}

// PipelineDef declares one named rule pipeline. A pipeline with no rules is
// legal and accepts every input.
type PipelineDef struct {
	ID          string    `yaml:"id" validate:"required,pipeline_id"`
	Description string    `yaml:"description,omitempty"`
	Rules       []RuleDef `yaml:"rules,omitempty" validate:"omitempty,dive"`
}

// RuleDef declares a single rule inside a pipeline. Parameterized rule types
// carry their settings in a type-specific structure; message overrides the
// rule's default failure message.
type RuleDef struct {
	Type    string `yaml:"type" validate:"required,oneof=non_empty digits_only min_length max_length matches one_of"`
	Message string `yaml:"message,omitempty"`

	MinLength *LengthParams  `yaml:",inline,omitempty"`
	MaxLength *LengthParams  `yaml:",inline,omitempty"`
	Matches   *PatternParams `yaml:",inline,omitempty"`
	OneOf     *ChoiceParams  `yaml:",inline,omitempty"`
}

// UnmarshalYAML customises rule decoding to populate type-specific
// parameters without conflicts.
func (r *RuleDef) UnmarshalYAML(value *yaml.Node) error {
	type baseRule struct {
		Type    string `yaml:"type"`
		Message string `yaml:"message"`
	}

	var base baseRule
	if err := value.Decode(&base); err != nil {
		return err
	}

	r.Type = base.Type
	r.Message = base.Message

	r.MinLength = nil
	r.MaxLength = nil
	r.Matches = nil
	r.OneOf = nil

	switch base.Type {
	case "min_length":
		var params LengthParams
		if err := value.Decode(&params); err != nil {
			return err
		}
		r.MinLength = &params
	case "max_length":
		var params LengthParams
		if err := value.Decode(&params); err != nil {
			return err
		}
		r.MaxLength = &params
	case "matches":
		var params PatternParams
		if err := value.Decode(&params); err != nil {
			return err
		}
		r.Matches = &params
	case "one_of":
		var params ChoiceParams
		if err := value.Decode(&params); err != nil {
			return err
		}
		r.OneOf = &params
	}

	return nil
}

// LengthParams parameterizes the min_length and max_length rules.
type LengthParams struct {
	Length int `yaml:"length" validate:"required,min=1"`
}

// PatternParams parameterizes the matches rule.
type PatternParams struct {
	Pattern string `yaml:"pattern" validate:"required"`
}

// ChoiceParams parameterizes the one_of rule.
type ChoiceParams struct {
	Values []string `yaml:"values" validate:"required,min=1,dive,min=1"`
}

// Pipeline retrieves a pipeline definition by id.
func (d *Document) Pipeline(id string) (*PipelineDef, bool) {
	for i := range d.Pipelines {
		if d.Pipelines[i].ID == id {
			return &d.Pipelines[i], true
		}
	}
	return nil, false
}

// PipelineIDs lists the declared pipeline ids in document order.
func (d *Document) PipelineIDs() []string {
	ids := make([]string, 0, len(d.Pipelines))
	for _, p := range d.Pipelines {
		ids = append(ids, p.ID)
	}
	return ids
}
