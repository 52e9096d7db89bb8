package textrank

import (
	"strings"
	"unicode"
)

// Sentence is one unit of the source document. Index is the position in
// the segmented sequence and stays stable through ranking and selection.
type Sentence struct {
	Index  int
	Raw    string
	Tokens []string
}

// Segment splits text into sentences and normalizes each one into a
// cleaned token list. Sentences are non-empty after trimming and keep
// their original relative order. A sentence whose token list comes out
// empty (all punctuation, all stop words) is kept: its raw text still
// belongs in the output, it just carries no ranking signal.
func Segment(text string) []Sentence {
	parts := splitSentences(text)
	sentences := make([]Sentence, 0, len(parts))
	for _, raw := range parts {
		sentences = append(sentences, Sentence{
			Index:  len(sentences),
			Raw:    raw,
			Tokens: CleanTokens(raw),
		})
	}
	return sentences
}

// splitSentences breaks text after runs of sentence-ending punctuation
// followed by whitespace. A trailing fragment without terminal
// punctuation is still a sentence.
func splitSentences(text string) []string {
	var out []string
	var cur strings.Builder
	runes := []rune(text)

	flush := func() {
		s := strings.TrimSpace(cur.String())
		if s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	for i := 0; i < len(runes); i++ {
		cur.WriteRune(runes[i])
		if !isSentenceEnd(runes[i]) {
			continue
		}
		// consume the full punctuation run ("..." or "?!")
		for i+1 < len(runes) && isSentenceEnd(runes[i+1]) {
			i++
			cur.WriteRune(runes[i])
		}
		if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
			flush()
		}
	}
	flush()
	return out
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// CleanTokens normalizes a sentence into tokens: every character that is
// not a letter, digit, or whitespace becomes a space, whitespace runs
// collapse, the result is lowercased, split on whitespace, and stop
// words are dropped.
func CleanTokens(s string) []string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(' ')
		}
	}
	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, f := range fields {
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "if", "in", "on", "at", "for",
		"to", "of", "is", "are", "was", "were", "be", "been", "it",
		"this", "that", "these", "those", "as", "with", "by", "from",
		"but", "not", "they", "you", "i", "we", "he", "she", "his",
		"her", "their", "them", "my", "your", "so", "what", "which",
		"who", "whom",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
