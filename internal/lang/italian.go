package lang

import "github.com/capisco/capisco-backend/internal/domain"

// Italian is the rule set for Italian source text.
var Italian = Ruleset{
	Code: "it",
	Name: "Italian",

	FunctionWords: map[string]string{
		// Articles.
		"il": "the", "lo": "the", "la": "the", "i": "the", "gli": "the",
		"le": "the", "un": "a", "uno": "a", "una": "a",
		// Articulated prepositions.
		"del": "of the", "dello": "of the", "della": "of the", "dei": "of the",
		"degli": "of the", "delle": "of the", "al": "to the", "allo": "to the",
		"alla": "to the", "ai": "to the", "alle": "to the", "nel": "in the",
		"nella": "in the", "sul": "on the", "sulla": "on the",
		// Prepositions.
		"di": "of", "da": "from", "in": "in", "con": "with", "su": "on",
		"per": "for", "tra": "between", "fra": "between",
		// Conjunctions and particles.
		"e": "and", "ed": "and", "o": "or", "ma": "but", "se": "if",
		"che": "that", "non": "not", "anche": "also", "come": "like",
		"quando": "when", "dove": "where", "perché": "because",
		// Pronouns.
		"io": "I", "tu": "you", "lui": "he", "lei": "she", "noi": "we",
		"voi": "you", "loro": "they", "mi": "me", "ti": "you", "si": "oneself",
		"ci": "us", "vi": "you", "ne": "of it", "questo": "this",
		"questa": "this", "quello": "that", "quella": "that",
		// High-frequency forms of essere/avere.
		"è": "is", "sono": "are", "era": "was", "ho": "I have", "ha": "has",
		"hanno": "they have", "essere": "to be", "avere": "to have",
		// Common adverbs.
		"più": "more", "molto": "very", "oggi": "today", "qui": "here",
		"sì": "yes", "no": "no", "cosa": "what", "chi": "who",
	},

	VerbSuffixes: []string{"are", "ere", "ire"},
	NounSuffixes: []SuffixNote{
		{Suffix: "zione", Note: "from the Latin suffix -tio, forming action nouns"},
		{Suffix: "mento", Note: "from the Latin suffix -mentum, denoting a result or means"},
		{Suffix: "ità", Note: "from the Latin suffix -itas, forming abstract qualities"},
		{Suffix: "ezza", Note: "from the Latin suffix -itia, forming abstract qualities"},
		{Suffix: "tore", Note: "from the Latin suffix -tor, denoting an agent"},
	},
	AdjectiveSuffixes: []string{"oso", "osa", "ale", "ivo", "iva", "ante", "ente", "bile"},

	Gendered: true,
	MasculineAExceptions: map[string]bool{
		"cinema": true, "problema": true, "sistema": true, "tema": true,
		"programma": true, "panorama": true, "clima": true, "diploma": true,
		"dramma": true, "pigiama": true,
	},
	PluralRules: []PluralRule{
		{SingularSuffix: "o", PluralSuffix: "i"},
		{SingularSuffix: "a", PluralSuffix: "e"},
		{SingularSuffix: "e", PluralSuffix: "i"},
	},

	FallbackExpressions: []domain.Expression{
		{Phrase: "Mi piace", Translation: "I like", Usage: "Expressing preferences"},
		{Phrase: "Molto bene", Translation: "Very good", Usage: "Expressing approval"},
		{Phrase: "Che cosa", Translation: "What", Usage: "Asking questions"},
	},
}
