package lang

import "github.com/capisco/capisco-backend/internal/domain"

// Spanish is the rule set for Spanish source text.
var Spanish = Ruleset{
	Code: "es",
	Name: "Spanish",

	FunctionWords: map[string]string{
		// Articles.
		"el": "the", "la": "the", "los": "the", "las": "the",
		"un": "a", "una": "a", "unos": "some", "unas": "some",
		// Contractions and prepositions.
		"del": "of the", "al": "to the", "de": "of", "a": "to", "en": "in",
		"con": "with", "por": "by", "para": "for", "sin": "without",
		"sobre": "on", "entre": "between",
		// Conjunctions and particles.
		"y": "and", "o": "or", "pero": "but", "si": "if", "que": "that",
		"no": "not", "también": "also", "como": "like", "cuando": "when",
		"donde": "where", "porque": "because",
		// Pronouns.
		"yo": "I", "tú": "you", "él": "he", "ella": "she", "usted": "you",
		"nosotros": "we", "ellos": "they", "ellas": "they", "me": "me",
		"te": "you", "se": "oneself", "nos": "us", "lo": "it", "le": "to him",
		"este": "this", "esta": "this", "ese": "that", "esa": "that",
		// High-frequency forms of ser/estar/haber.
		"es": "is", "son": "are", "era": "was", "está": "is", "están": "are",
		"hay": "there is", "ser": "to be", "estar": "to be",
		// Common adverbs.
		"más": "more", "muy": "very", "hoy": "today", "aquí": "here",
		"sí": "yes", "qué": "what", "quién": "who",
	},

	VerbSuffixes: []string{"ar", "er", "ir"},
	NounSuffixes: []SuffixNote{
		{Suffix: "ción", Note: "from the Latin suffix -tio, forming action nouns"},
		{Suffix: "sión", Note: "from the Latin suffix -sio, forming action nouns"},
		{Suffix: "dad", Note: "from the Latin suffix -itas, forming abstract qualities"},
		{Suffix: "miento", Note: "from the Latin suffix -mentum, denoting a result or means"},
		{Suffix: "dor", Note: "from the Latin suffix -tor, denoting an agent"},
	},
	AdjectiveSuffixes: []string{"oso", "osa", "ivo", "iva", "ante", "iente", "ble"},

	Gendered: true,
	MasculineAExceptions: map[string]bool{
		"día": true, "mapa": true, "planeta": true, "problema": true,
		"sistema": true, "tema": true, "programa": true, "clima": true,
		"idioma": true, "sofá": true,
	},
	PluralRules: []PluralRule{
		{SingularSuffix: "o", PluralSuffix: "os"},
		{SingularSuffix: "a", PluralSuffix: "as"},
		{SingularSuffix: "e", PluralSuffix: "es"},
	},

	FallbackExpressions: []domain.Expression{
		{Phrase: "Me gusta", Translation: "I like", Usage: "Expressing preferences"},
		{Phrase: "Muy bien", Translation: "Very good", Usage: "Expressing approval"},
		{Phrase: "Por favor", Translation: "Please", Usage: "Polite requests"},
	},
}
