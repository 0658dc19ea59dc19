package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWordsResponse_Strict(t *testing.T) {
	t.Parallel()

	raw := `{"words":[{"word":"gelato","translation":"ice cream","partOfSpeech":"noun","gender":"m","singular":"gelato","plural":"gelati","pronunciation":"ge-LA-to","etymology":"from latin gelatus","usage":"noun in Italian","culturalNotes":"a staple of Italian summers","examples":["Il gelato è buono"]}]}`

	words := ParseWordsResponse(raw)
	require.Len(t, words, 1)
	assert.Equal(t, "gelato", words[0].Word)
	assert.Equal(t, "ice cream", words[0].Translation)
	assert.Equal(t, "gelati", words[0].Plural)
	assert.Equal(t, []string{"Il gelato è buono"}, words[0].Examples)
}

func TestParseWordsResponse_TruncatedMidObject(t *testing.T) {
	t.Parallel()

	// Token-limit truncation: the second record is cut mid-key.
	raw := `{"words":[{"word":"gelato","translation":"ice cream"},{"word":"inverno","transl`

	words := ParseWordsResponse(raw)
	require.Len(t, words, 1)
	assert.Equal(t, "gelato", words[0].Word)
	assert.Equal(t, "ice cream", words[0].Translation)
}

func TestParseWordsResponse_TruncatedInsideString(t *testing.T) {
	t.Parallel()

	raw := `{"words":[{"word":"gelato","translation":"ice cr`

	words := ParseWordsResponse(raw)
	require.Len(t, words, 1)
	assert.Equal(t, "gelato", words[0].Word)
}

func TestParseWordsResponse_SurroundingProse(t *testing.T) {
	t.Parallel()

	raw := "Here is the vocabulary you asked for:\n" +
		`{"words":[{"word":"sole","translation":"sun"}]}` +
		"\nLet me know if you need more."

	words := ParseWordsResponse(raw)
	require.Len(t, words, 1)
	assert.Equal(t, "sole", words[0].Word)
	assert.Equal(t, "sun", words[0].Translation)
}

func TestParseWordsResponse_SalvageFragments(t *testing.T) {
	t.Parallel()

	// Two well-formed fragments separated by junk: not repairable into a
	// single document, but both records are recoverable.
	raw := `{"word":"gelato","translation":"ice cream"} ??? {"word":"casa","translation":"house"}`

	words := ParseWordsResponse(raw)
	require.Len(t, words, 2)
	assert.Equal(t, "gelato", words[0].Word)
	assert.Equal(t, "house", words[1].Translation)
}

func TestParseWordsResponse_SalvageZipsLooseValues(t *testing.T) {
	t.Parallel()

	raw := `"word": "gelato" ... "word": "casa" ... "translation": "ice cream"`

	words := ParseWordsResponse(raw)
	require.Len(t, words, 2)
	assert.Equal(t, "ice cream", words[0].Translation)
	assert.Equal(t, "casa", words[1].Word)
	assert.Empty(t, words[1].Translation)
}

func TestParseWordsResponse_GarbageYieldsEmpty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "no json here at all", "[]", `{"words":[]}`} {
		words := ParseWordsResponse(raw)
		assert.NotNil(t, words, "input %q", raw)
		assert.Empty(t, words, "input %q", raw)
	}
}

func TestRepairJSON_IdempotentOnValidInput(t *testing.T) {
	t.Parallel()

	valid := `{"words":[{"word":"gelato","translation":"ice \"cream\""}]}`
	once := repairJSON(valid)
	assert.JSONEq(t, valid, once)
	assert.Equal(t, once, repairJSON(once))
}

func TestRepairJSON_MismatchedCloser(t *testing.T) {
	t.Parallel()

	got := repairJSON(`{"words":[{"word":"a"]}`)
	words, ok := tryStrict(got)
	require.True(t, ok, "repaired text must parse: %q", got)
	require.Len(t, words, 1)
	assert.Equal(t, "a", words[0].Word)
}
