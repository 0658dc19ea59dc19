package heuristic

import "strings"

const vowels = "aeiouyàèéìíòóùúáäëïöü"

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// syllabify splits a word into rough syllables: each syllable holds one
// vowel group; a single consonant between vowels opens the next syllable,
// while the first consonant of a cluster closes the previous one.
// Good enough for readable stress marks, not a phonological analysis.
func syllabify(word string) []string {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}

	var syllables []string
	var current []rune
	i := 0
	for i < len(runes) {
		// Consume consonants leading into the next vowel group.
		for i < len(runes) && !isVowel(runes[i]) {
			current = append(current, runes[i])
			i++
		}
		// Consume the vowel group.
		for i < len(runes) && isVowel(runes[i]) {
			current = append(current, runes[i])
			i++
		}
		// Look ahead: count the consonant cluster before the next vowel.
		j := i
		for j < len(runes) && !isVowel(runes[j]) {
			j++
		}
		if j == len(runes) {
			// Trailing consonants attach to the last syllable.
			current = append(current, runes[i:]...)
			i = len(runes)
		} else if j-i > 1 {
			// Cluster: first consonant closes this syllable.
			current = append(current, runes[i])
			i++
		}
		if len(current) > 0 {
			syllables = append(syllables, string(current))
			current = nil
		}
	}
	return syllables
}
