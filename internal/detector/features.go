package detector

import (
	"regexp"
	"strings"
)

// FeatureVector maps feature names to their computed values. It is either empty
// (degenerate input) or carries all ten features.
type FeatureVector map[string]float64

// Feature names shared between extraction and scoring.
const (
	featAvgSentenceLength  = "avg_sentence_length"
	featVocabularyRichness = "vocabulary_richness"
	featPunctuationDensity = "punctuation_density"
	featConjunctionFreq    = "conjunction_freq"
	featFirstPersonFreq    = "first_person_freq"
	featPassiveVoiceFreq   = "passive_voice_freq"
	featAvgWordLength      = "avg_word_length"
	featSentenceComplexity = "sentence_complexity"
	featRepetitionScore    = "repetition_score"
	featFormalityScore     = "formality_score"
)

var contractionPattern = regexp.MustCompile(`\b\w+'[a-z]+\b`)

var conjunctions = wordSet(
	"and", "but", "or", "so", "yet", "for", "nor", "although",
	"because", "since", "while", "whereas", "however", "therefore",
	"moreover", "furthermore", "additionally", "consequently",
)

var firstPersonPronouns = wordSet(
	"i", "me", "my", "mine", "myself", "we", "us", "our", "ours", "ourselves",
)

var passiveIndicators = wordSet(
	"was", "were", "been", "being", "is", "are", "am",
)

var informalMarkers = wordSet(
	"gonna", "wanna", "kinda", "sorta", "yeah", "yep",
	"nope", "ok", "okay", "hey", "hi", "well", "like",
	"actually", "basically", "literally", "totally",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

// ExtractFeatures computes the ten linguistic statistics used by the model. It
// returns an empty vector when the text is blank or yields no words or no
// sentences, which downstream stages treat as insufficient input.
func ExtractFeatures(text string) FeatureVector {
	if strings.TrimSpace(text) == "" {
		return FeatureVector{}
	}

	sentences := SplitSentences(text)
	words := Words(text)
	if len(words) == 0 || len(sentences) == 0 {
		return FeatureVector{}
	}

	wordCount := float64(len(words))
	sentenceCount := float64(len(sentences))

	features := make(FeatureVector, 10)

	totalSentenceWords := 0
	for _, sentence := range sentences {
		totalSentenceWords += len(Words(sentence))
	}
	features[featAvgSentenceLength] = float64(totalSentenceWords) / sentenceCount

	unique := make(map[string]struct{}, len(words))
	for _, word := range words {
		unique[strings.ToLower(word)] = struct{}{}
	}
	features[featVocabularyRichness] = float64(len(unique)) / wordCount

	punctuation := 0
	clauseMarkers := 0
	for _, r := range text {
		if strings.ContainsRune(`.,!?;:"-()[]{}`, r) {
			punctuation++
		}
		if r == ',' || r == ';' || r == ':' {
			clauseMarkers++
		}
	}
	features[featPunctuationDensity] = float64(punctuation) / wordCount
	features[featSentenceComplexity] = float64(clauseMarkers) / sentenceCount

	features[featConjunctionFreq] = setFrequency(words, conjunctions)
	features[featFirstPersonFreq] = setFrequency(words, firstPersonPronouns)
	features[featPassiveVoiceFreq] = setFrequency(words, passiveIndicators)

	totalChars := 0
	for _, word := range words {
		totalChars += len(word)
	}
	features[featAvgWordLength] = float64(totalChars) / wordCount

	features[featRepetitionScore] = repetitionScore(words)
	features[featFormalityScore] = formalityScore(text, words)

	return features
}

func setFrequency(words []string, set map[string]struct{}) float64 {
	count := 0
	for _, word := range words {
		if _, ok := set[strings.ToLower(word)]; ok {
			count++
		}
	}
	return float64(count) / float64(len(words))
}

// repetitionScore measures how much of the word sequence consists of repeated
// trigrams: 1 - unique/total over sliding windows of three lowercased words.
func repetitionScore(words []string) float64 {
	if len(words) < 4 {
		return 0.0
	}

	total := len(words) - 2
	seen := make(map[string]struct{}, total)
	for i := 0; i < total; i++ {
		trigram := strings.ToLower(strings.Join(words[i:i+3], " "))
		seen[trigram] = struct{}{}
	}

	return 1 - float64(len(seen))/float64(total)
}

// formalityScore is inversely related to contraction and informal-word density,
// clamped to [0, 1]. Contractions count double.
func formalityScore(text string, words []string) float64 {
	if len(words) == 0 {
		return 0.5
	}

	contractions := contractionPattern.FindAllString(strings.ToLower(text), -1)
	contractionRatio := float64(len(contractions)) / float64(len(words))
	informalRatio := setFrequency(words, informalMarkers)

	formality := 1 - (contractionRatio*2 + informalRatio)
	if formality < 0 {
		return 0
	}
	if formality > 1 {
		return 1
	}
	return formality
}
