package rule

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var digitsPattern = regexp.MustCompile(`^\d+$`)

func nonEmptyRule() Rule[string] {
	return Rule[string]{
		Name:      "non_empty",
		Message:   "Input is empty",
		Predicate: func(input string) bool { return len(input) > 0 },
	}
}

func digitsOnlyRule() Rule[string] {
	return Rule[string]{
		Name:      "digits_only",
		Message:   "Input should only contain digits",
		Predicate: digitsPattern.MatchString,
	}
}

func TestPipelineEvaluate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		rules       []Rule[string]
		input       string
		wantValid   bool
		wantMessage string
	}{
		{
			name:        "empty input fails the first rule",
			rules:       []Rule[string]{nonEmptyRule(), digitsOnlyRule()},
			input:       "",
			wantMessage: "Input is empty",
		},
		{
			name:        "letters fail the digits rule",
			rules:       []Rule[string]{nonEmptyRule(), digitsOnlyRule()},
			input:       "abc",
			wantMessage: "Input should only contain digits",
		},
		{
			name:      "digits pass every rule",
			rules:     []Rule[string]{nonEmptyRule(), digitsOnlyRule()},
			input:     "123",
			wantValid: true,
		},
		{
			name:        "mixed input fails the digits rule",
			rules:       []Rule[string]{nonEmptyRule(), digitsOnlyRule()},
			input:       "12a",
			wantMessage: "Input should only contain digits",
		},
		{
			name:      "zero rules accept every input",
			rules:     nil,
			input:     "",
			wantValid: true,
		},
		{
			name:        "rule order decides which failure is reported",
			rules:       []Rule[string]{digitsOnlyRule(), nonEmptyRule()},
			input:       "",
			wantMessage: "Input should only contain digits",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := New(tc.rules...)
			res := p.Evaluate(tc.input)

			if tc.wantValid {
				require.True(t, res.IsValid())
				require.Equal(t, StatusValid, res.Status)
				require.Empty(t, res.Message)
				return
			}

			require.False(t, res.IsValid())
			require.Equal(t, StatusInvalid, res.Status)
			require.Equal(t, tc.wantMessage, res.Message)
		})
	}
}

func TestPipelineEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()

	p := New(nonEmptyRule(), digitsOnlyRule())

	first := p.Evaluate("12a")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, p.Evaluate("12a"))
	}
}

func TestPipelineShortCircuitsOnFirstFailure(t *testing.T) {
	t.Parallel()

	var evaluated []string
	record := func(name string, accept bool) Rule[string] {
		return Rule[string]{
			Name:    name,
			Message: name + " failed",
			Predicate: func(string) bool {
				evaluated = append(evaluated, name)
				return accept
			},
		}
	}

	p := New(record("first", true), record("second", false), record("third", false))
	res := p.Evaluate("anything")

	require.Equal(t, "second failed", res.Message)
	require.Equal(t, "second", res.Rule)
	require.Equal(t, []string{"first", "second"}, evaluated)
}

func TestPipelineCopiesRulesAtConstruction(t *testing.T) {
	t.Parallel()

	rules := []Rule[string]{nonEmptyRule()}
	p := New(rules...)

	rules[0] = Rule[string]{
		Name:      "reject_all",
		Message:   "always rejected",
		Predicate: func(string) bool { return false },
	}

	require.True(t, p.Evaluate("still valid").IsValid())
}

func TestPipelineRulesReturnsCopy(t *testing.T) {
	t.Parallel()

	p := New(nonEmptyRule(), digitsOnlyRule())

	rules := p.Rules()
	require.Len(t, rules, 2)

	rules[0] = Rule[string]{Predicate: func(string) bool { return false }, Message: "tampered"}
	require.True(t, p.Evaluate("42").IsValid())
}

func TestPipelinePredicatePanicsPropagate(t *testing.T) {
	t.Parallel()

	p := New(Rule[string]{
		Name:      "exploding",
		Message:   "never reported",
		Predicate: func(string) bool { panic("predicate failure") },
	})

	require.PanicsWithValue(t, "predicate failure", func() {
		p.Evaluate("anything")
	})
}

func TestZeroValuePipelineAcceptsEverything(t *testing.T) {
	t.Parallel()

	var p Pipeline[string]
	require.True(t, p.Evaluate("").IsValid())
	require.Zero(t, p.Len())
}

func TestPipelineIsTypeParametric(t *testing.T) {
	t.Parallel()

	positive := Rule[int]{
		Name:      "positive",
		Message:   "value must be positive",
		Predicate: func(v int) bool { return v > 0 },
	}

	p := New(positive)
	require.True(t, p.Evaluate(3).IsValid())
	require.Equal(t, "value must be positive", p.Evaluate(-1).Message)
}
