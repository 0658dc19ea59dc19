package enrich

import (
	"encoding/json"
	"regexp"
	"strings"
)

// WordPayload is one enrichment record as returned by the external
// content-generation service. All fields are optional: missing values
// are filled heuristically during the merge.
type WordPayload struct {
	Word          string   `json:"word"`
	Translation   string   `json:"translation"`
	PartOfSpeech  string   `json:"partOfSpeech"`
	Gender        string   `json:"gender"`
	Singular      string   `json:"singular"`
	Plural        string   `json:"plural"`
	Pronunciation string   `json:"pronunciation"`
	Etymology     string   `json:"etymology"`
	Usage         string   `json:"usage"`
	CulturalNotes string   `json:"culturalNotes"`
	Examples      []string `json:"examples"`
}

type wordsEnvelope struct {
	Words []WordPayload `json:"words"`
}

// ParseWordsResponse extracts enrichment records from a raw service
// response. The service is not trusted to emit well-formed JSON
// (truncation from token limits, quoting errors), so parsing degrades
// in stages: strict parse, bracket-stack repair, regex salvage, and
// finally an empty list. It never fails.
func ParseWordsResponse(raw string) []WordPayload {
	// Stage 1: strict parse.
	if words, ok := tryStrict(raw); ok {
		return words
	}

	// Stage 2: repair truncated or unbalanced JSON and retry.
	if words, ok := tryStrict(repairJSON(raw)); ok {
		return words
	}

	// Stage 3: salvage whatever fragments look like records.
	return salvageWords(raw)
}

func tryStrict(raw string) ([]WordPayload, bool) {
	var env wordsEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, false
	}
	if env.Words == nil {
		return []WordPayload{}, true
	}
	return env.Words, true
}

// repairJSON rebuilds a parseable prefix of a malformed JSON document.
// It scans character by character tracking string/escape state and a
// bracket stack. Whenever a container closes, the position and the
// remaining open brackets are snapshotted; on truncation the text is cut
// at the last snapshot and the open brackets are closed in order. If no
// container ever closed, the open string (if any) is terminated and all
// open brackets are appended. Valid input survives unchanged apart from
// surrounding prose, so the repair is idempotent.
func repairJSON(raw string) string {
	s := stripNonPrintable(raw)

	// Discard any prose before the first opening bracket.
	if i := strings.IndexAny(s, "{["); i > 0 {
		s = s[i:]
	} else if i < 0 {
		return s
	}

	var (
		stack    []byte
		inString bool
		escaped  bool

		cutPos   = -1
		cutStack []byte
	)

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != ch {
				// Mismatched closer: cut just before it.
				return cutAndClose(s[:i], stack)
			}
			stack = stack[:len(stack)-1]
			cutPos = i + 1
			cutStack = append(cutStack[:0], stack...)
		}
	}

	if cutPos >= 0 {
		// Cutting at the last snapshot also drops any prose trailing a
		// complete document.
		return cutAndClose(s[:cutPos], cutStack)
	}
	if len(stack) == 0 && !inString {
		return s
	}

	// Nothing ever closed: terminate the open string and close brackets.
	if inString {
		s += `"`
	}
	return cutAndClose(s, stack)
}

// cutAndClose appends closers for the still-open brackets, innermost first.
func cutAndClose(s string, open []byte) string {
	var b strings.Builder
	b.WriteString(s)
	for i := len(open) - 1; i >= 0; i-- {
		b.WriteByte(open[i])
	}
	return b.String()
}

// stripNonPrintable removes control characters that commonly leak into
// streamed responses, keeping whitespace JSON allows between tokens.
func stripNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

var (
	fragmentRe = regexp.MustCompile(`\{[^{}]*\}`)
	wordRe     = regexp.MustCompile(`"word"\s*:\s*("(?:[^"\\]|\\.)*")`)
	translitRe = regexp.MustCompile(`"translation"\s*:\s*("(?:[^"\\]|\\.)*")`)
)

// salvageWords reconstructs minimal records from object-like fragments
// carrying both a word and a translation. When no such fragment exists,
// all word values and all translation values are collected independently
// and zipped positionally; missing translations stay empty and are
// filled heuristically downstream.
func salvageWords(raw string) []WordPayload {
	var words []WordPayload

	for _, frag := range fragmentRe.FindAllString(raw, -1) {
		w := wordRe.FindStringSubmatch(frag)
		tr := translitRe.FindStringSubmatch(frag)
		if w == nil || tr == nil {
			continue
		}
		words = append(words, WordPayload{
			Word:        unquote(w[1]),
			Translation: unquote(tr[1]),
		})
	}
	if len(words) > 0 {
		return words
	}

	wordVals := wordRe.FindAllStringSubmatch(raw, -1)
	trVals := translitRe.FindAllStringSubmatch(raw, -1)
	for i, w := range wordVals {
		p := WordPayload{Word: unquote(w[1])}
		if i < len(trVals) {
			p.Translation = unquote(trVals[i][1])
		}
		words = append(words, p)
	}
	if words == nil {
		return []WordPayload{}
	}
	return words
}

// unquote decodes a JSON string literal, falling back to trimming the
// surrounding quotes when the literal itself is damaged.
func unquote(lit string) string {
	var s string
	if err := json.Unmarshal([]byte(lit), &s); err == nil {
		return s
	}
	return strings.Trim(lit, `"`)
}
