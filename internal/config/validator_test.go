package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	checkpipeerrors "github.com/mlavigne/checkpipe/pkg/errors"
)

func validDocument() *Document {
	return &Document{
		Version: "1.0",
		Name:    "Test Rules",
		Pipelines: []PipelineDef{
			{
				ID: "quantity",
				Rules: []RuleDef{
					{Type: "non_empty"},
					{Type: "digits_only"},
				},
			},
		},
	}
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	t.Run("valid document passes", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, ValidateDocument(validDocument()))
	})

	t.Run("nil document is rejected", func(t *testing.T) {
		t.Parallel()

		err := ValidateDocument(nil)
		var schemaErr *checkpipeerrors.SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})

	t.Run("duplicate pipeline ids are rejected", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.Pipelines = append(doc.Pipelines, PipelineDef{ID: "quantity"})

		err := ValidateDocument(doc)
		var schemaErr *checkpipeerrors.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		require.Contains(t, schemaErr.Message, "duplicate pipeline id")
	})

	t.Run("pipeline id must be lowercase identifier", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.Pipelines[0].ID = "Not-Valid"

		err := ValidateDocument(doc)
		var schemaErr *checkpipeerrors.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		require.Contains(t, schemaErr.Field, "id")
	})

	t.Run("pipeline without rules is legal", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.Pipelines[0].Rules = nil

		require.NoError(t, ValidateDocument(doc))
	})

	t.Run("unknown rule type is rejected", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.Pipelines[0].Rules = []RuleDef{{Type: "telepathy"}}

		err := ValidateDocument(doc)
		var schemaErr *checkpipeerrors.SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})

	t.Run("min_length requires parameters", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.Pipelines[0].Rules = []RuleDef{{Type: "min_length"}}

		err := ValidateDocument(doc)
		var schemaErr *checkpipeerrors.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		require.Contains(t, schemaErr.Message, "length is required")
	})

	t.Run("matches pattern must compile", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.Pipelines[0].Rules = []RuleDef{{
			Type:    "matches",
			Matches: &PatternParams{Pattern: "("},
		}}

		err := ValidateDocument(doc)
		var schemaErr *checkpipeerrors.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		require.Contains(t, schemaErr.Message, "invalid pattern")
	})

	t.Run("one_of requires at least one value", func(t *testing.T) {
		t.Parallel()

		doc := validDocument()
		doc.Pipelines[0].Rules = []RuleDef{{
			Type:  "one_of",
			OneOf: &ChoiceParams{},
		}}

		err := ValidateDocument(doc)
		var schemaErr *checkpipeerrors.SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})
}

func TestDocumentPipelineLookup(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Pipelines = append(doc.Pipelines, PipelineDef{ID: "username"})

	found, ok := doc.Pipeline("username")
	require.True(t, ok)
	require.Equal(t, "username", found.ID)

	_, ok = doc.Pipeline("absent")
	require.False(t, ok)

	require.Equal(t, []string{"quantity", "username"}, doc.PipelineIDs())
}
