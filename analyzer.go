// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS OVERVIEW
// ═══════════════════════════════════════════════════════════════════════════════
// Before words can be counted, raw text has to be cut into tokens. The analyzer
// is the loader that sits in front of an Index: it produces the token stream
// that Populate feeds to Add, one call per token.
//
// ANALYSIS PIPELINE:
// ------------------
//  1. Tokenization      → Split text into words
//  2. Lowercasing       → Normalize case ("Quick" → "quick"), optional
//  3. Stop word removal → Remove common words ("the", "a", etc.), optional
//  4. Length filtering  → Remove tokens shorter than MinTokenLength
//  5. Stemming          → Reduce words to root form ("running" → "run"), optional
//
// EXAMPLE TRANSFORMATION (all stages enabled):
// --------------------------------------------
// Input:  "The Quick Brown Fox Jumps!"
// Step 1: ["The", "Quick", "Brown", "Fox", "Jumps"]     (tokenize)
// Step 2: ["the", "quick", "brown", "fox", "jumps"]     (lowercase)
// Step 3: ["quick", "brown", "fox", "jumps"]            (remove stopwords)
// Step 4: ["quick", "brown", "fox", "jumps"]            (length filter)
// Step 5: ["quick", "brown", "fox", "jump"]             (stemming)
//
// Word counting usually wants the raw words, so DefaultConfig only tokenizes
// and lowercases. The other stages are switched on through AnalyzerConfig.
// ═══════════════════════════════════════════════════════════════════════════════

package wordindex

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// maxLineLength bounds a single line read by AnalyzeReader
const maxLineLength = 1 << 20

// AnalyzerConfig holds configuration options for text analysis
type AnalyzerConfig struct {
	MinTokenLength  int  `yaml:"minTokenLength"`  // Minimum token length to keep
	PreserveCase    bool `yaml:"preserveCase"`    // Skip lowercasing when true
	EnableStemming  bool `yaml:"enableStemming"`  // Apply the Snowball stemmer
	EnableStopwords bool `yaml:"enableStopwords"` // Drop common English words
}

// DefaultConfig returns the word-counting analyzer configuration
func DefaultConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MinTokenLength:  1,
		PreserveCase:    false,
		EnableStemming:  false,
		EnableStopwords: false,
	}
}

// Analyze transforms raw text into tokens using DefaultConfig
//
// Example:
//
//	tokens := Analyze("The cat saw the other cat")
//	// Returns: ["the", "cat", "saw", "the", "other", "cat"]
func Analyze(text string) []string {
	return AnalyzeWithConfig(text, DefaultConfig())
}

// AnalyzeWithConfig transforms text using a custom configuration
//
// Example:
//
//	config := AnalyzerConfig{MinTokenLength: 3, EnableStemming: true}
//	tokens := AnalyzeWithConfig("Running dogs ran", config)
//	// Returns: ["run", "dog", "ran"]
func AnalyzeWithConfig(text string, config AnalyzerConfig) []string {
	tokens := tokenize(text)

	if !config.PreserveCase {
		tokens = lowercaseFilter(tokens)
	}

	if config.EnableStopwords {
		tokens = stopwordFilter(tokens)
	}

	tokens = lengthFilter(tokens, config.MinTokenLength)

	if config.EnableStemming {
		tokens = stemmerFilter(tokens)
	}

	return tokens
}

// AnalyzeReader runs the pipeline over r line by line
//
// Tokens never span lines, so this yields the same tokens as reading the whole
// input into memory and calling AnalyzeWithConfig, while only holding one line
// at a time.
func AnalyzeReader(r io.Reader, config AnalyzerConfig) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, AnalyzeWithConfig(scanner.Text(), config)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return tokens, nil
}

// tokenize splits text into individual words
//
// Any character that is neither a letter nor a digit is a delimiter:
//
//	"hello-world"      → ["hello", "world"]
//	"user@email.com"   → ["user", "email", "com"]
//	"café"             → ["café"]
//
// FieldsFunc never produces empty tokens, which matters because an Index
// rejects the empty key.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// lowercaseFilter normalizes token casing so "Fox" and "fox" count together
func lowercaseFilter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = strings.ToLower(token)
	}
	return r
}

// stopwordFilter removes common English words
func stopwordFilter(tokens []string) []string {
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !isStopword(token) {
			r = append(r, token)
		}
	}
	return r
}

// lengthFilter removes tokens shorter than minLength runes
func lengthFilter(tokens []string, minLength int) []string {
	if minLength <= 1 {
		return tokens
	}
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len([]rune(token)) >= minLength {
			r = append(r, token)
		}
	}
	return r
}

// stemmerFilter reduces words to their root form with the Snowball (Porter2)
// English stemmer
//
//	["running", "quickly", "foxes"] → ["run", "quick", "fox"]
//
// A token the stemmer reduces to nothing is kept as-is.
func stemmerFilter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		stemmed := snowballeng.Stem(token, false)
		if stemmed == "" {
			stemmed = token
		}
		r[i] = stemmed
	}
	return r
}

// isStopword checks the lowercased token against englishStopwords
func isStopword(token string) bool {
	_, exists := englishStopwords[strings.ToLower(token)]
	return exists
}

// englishStopwords lists articles, prepositions, conjunctions, pronouns and
// auxiliary verbs. struct{} values take no space.
var englishStopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {}, "can": {},
	"could": {}, "did": {}, "do": {}, "does": {}, "doing": {}, "down": {},
	"during": {}, "each": {}, "few": {}, "for": {}, "from": {}, "further": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {},
	"how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "itself": {}, "me": {}, "more": {}, "most": {}, "my": {},
	"myself": {}, "no": {}, "nor": {}, "not": {}, "of": {}, "off": {}, "on": {},
	"once": {}, "only": {}, "or": {}, "other": {}, "our": {}, "ours": {},
	"ourselves": {}, "out": {}, "over": {}, "own": {}, "same": {}, "she": {},
	"should": {}, "so": {}, "some": {}, "such": {}, "than": {}, "that": {},
	"the": {}, "their": {}, "theirs": {}, "them": {}, "themselves": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "too": {}, "under": {}, "until": {}, "up": {},
	"very": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "while": {}, "who": {}, "whom": {}, "why": {},
	"will": {}, "with": {}, "would": {}, "you": {}, "your": {}, "yours": {},
	"yourself": {}, "yourselves": {},
}
