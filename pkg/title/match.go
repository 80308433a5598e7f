package title

import (
	"regexp"
	"strings"

	"github.com/hbollon/go-edlib"
)

var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence buckets a similarity score.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// ConfidenceOf maps a score in [0,1] to a Confidence.
func ConfidenceOf(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Result is the outcome of matching a query against one title.
type Result struct {
	Score      float64
	Confidence Confidence
}

// Match scores query against candidate. Both are cleaned first. A query whose
// words appear as a contiguous run in the candidate scores 1.0, so
// "godfather" fully matches "The Godfather Part II". Otherwise the score is
// Jaro-Winkler similarity adjusted for sequel numbers.
func Match(query, candidate string) Result {
	q := Clean(query)
	c := Clean(candidate)
	if q == "" || c == "" {
		return Result{Confidence: ConfidenceNone}
	}

	if containsWords(c, q) {
		return Result{Score: 1, Confidence: ConfidenceHigh}
	}

	score := float64(edlib.JaroWinklerSimilarity(q, c))
	score = adjustScoreForNumbers(score, numberRegex.FindAllString(q, -1), numberRegex.FindAllString(c, -1))
	return Result{Score: score, Confidence: ConfidenceOf(score)}
}

func containsWords(haystack, needle string) bool {
	return strings.Contains(" "+haystack+" ", " "+needle+" ")
}

// adjustScoreForNumbers rewards a shared sequel number and penalizes a
// missing or different one. Queries without numbers are unaffected.
func adjustScoreForNumbers(score float64, queryNums, candidateNums []string) float64 {
	if len(queryNums) == 0 {
		return score
	}
	if len(candidateNums) == 0 {
		return score * 0.85
	}

	candidateSet := make(map[string]bool, len(candidateNums))
	for _, n := range candidateNums {
		candidateSet[n] = true
	}
	for _, n := range queryNums {
		if candidateSet[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
