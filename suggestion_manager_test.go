package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectSuggestionTexts(m *suggestionManagerImpl) []string {
	texts := []string{}
	m.setStartIndex(0)
	m.forEachSuggestion(func(c *Completion, _ uint32) iterationDecision {
		texts = append(texts, c.Text)
		return iterationDecisionContinue
	})
	return texts
}

func TestSetSuggestionsSortsByCollation(t *testing.T) {
	m := newSuggestionManager().(*suggestionManagerImpl)
	m.setSuggestions([]Completion{{Text: "zeta"}, {Text: "alpha"}, {Text: "midway"}})

	assert.Equal(t, []string{"alpha", "midway", "zeta"}, collectSuggestionTexts(m))
}

func TestSetSuggestionsComputesCommonPrefix(t *testing.T) {
	m := newSuggestionManager().(*suggestionManagerImpl)
	m.setSuggestions([]Completion{{Text: "hello"}, {Text: "hell"}})

	assert.Equal(t, uint32(4), m.largestCommonSuggestionPrefixLength)
}

func TestSingleSuggestionCommitsWithTrailingSeparator(t *testing.T) {
	m := newSuggestionManager().(*suggestionManagerImpl)
	m.setSuggestions([]Completion{{Text: "hello", InvariantOffset: 2}})

	result := m.attemptCompletion(completionModeCompletePrefix, 2)
	require.Equal(t, completionModeDontComplete, result.newCompletionMode)
	assert.Equal(t, "llo ", string(result.insert))
}

func TestSingleDirectorySuggestionOmitsSeparator(t *testing.T) {
	m := newSuggestionManager().(*suggestionManagerImpl)
	m.setSuggestions([]Completion{{Text: "src/", InvariantOffset: 1}})

	result := m.attemptCompletion(completionModeCompletePrefix, 1)
	require.Equal(t, completionModeDontComplete, result.newCompletionMode)
	assert.Equal(t, "rc/", string(result.insert))
}

func TestSingleSuggestionWithTriviaKeepsHostTrivia(t *testing.T) {
	m := newSuggestionManager().(*suggestionManagerImpl)
	m.setSuggestions([]Completion{{Text: "hello", TrailingTrivia: "!", InvariantOffset: 0}})

	result := m.attemptCompletion(completionModeCompletePrefix, 0)
	require.Equal(t, completionModeDontComplete, result.newCompletionMode)
	assert.Equal(t, "hello!", string(result.insert))
}

func TestAmbiguousSuggestionsDeferToListing(t *testing.T) {
	m := newSuggestionManager().(*suggestionManagerImpl)
	m.setSuggestions([]Completion{{Text: "hell"}, {Text: "hello"}})

	result := m.attemptCompletion(completionModeCompletePrefix, 0)
	assert.Equal(t, completionModeShowSuggestions, result.newCompletionMode)
	assert.True(t, result.avoidCommittingToSingleSuggestion)
}

func TestResetClearsCommonPrefix(t *testing.T) {
	m := newSuggestionManager().(*suggestionManagerImpl)
	m.setSuggestions([]Completion{{Text: "hello"}})
	m.reset()

	assert.Equal(t, uint32(0), m.largestCommonSuggestionPrefixLength)
	assert.Equal(t, uint32(0), m.count())
}
