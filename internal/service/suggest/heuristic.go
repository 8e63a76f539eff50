package suggest

import (
	"regexp"
	"strings"

	"github.com/sandevgo/promptvault/internal/core"
)

const (
	DefaultTitle = "New Prompt"
	DefaultTag   = "general"

	titleWords = 4
)

var (
	nonWord   = regexp.MustCompile(`[^\w\s]`)
	stopWords = map[string]struct{}{
		"this": {}, "that": {}, "with": {}, "from": {}, "they": {}, "have": {},
		"will": {}, "been": {}, "said": {}, "each": {}, "which": {}, "their": {},
		"time": {}, "would": {}, "there": {}, "could": {}, "other": {},
	}
)

type category struct {
	tag     string
	pattern *regexp.Regexp
}

// Checked in order; a prompt may match several.
var categories = []category{
	{"programming", regexp.MustCompile(`\b(function|class|method|variable|code|programming|javascript|python|typescript|java|c\+\+|html|css|sql|api|database)\b`)},
	{"ai", regexp.MustCompile(`\b(ai|artificial intelligence|machine learning|neural network|model|training|algorithm|data science)\b`)},
	{"documentation", regexp.MustCompile(`\b(documentation|readme|guide|tutorial|instructions|how to|step by step)\b`)},
	{"web-development", regexp.MustCompile(`\b(web|website|frontend|backend|react|angular|vue|node|express|api|rest)\b`)},
	{"devops", regexp.MustCompile(`\b(docker|kubernetes|deployment|ci/cd|jenkins|github actions|aws|cloud|infrastructure)\b`)},
	{"testing", regexp.MustCompile(`\b(test|testing|unit test|integration test|automation|jest|mocha|cypress)\b`)},
}

// Heuristic derives suggestions from keywords alone, without a provider.
func Heuristic(content string) *core.Suggestions {
	return &core.Suggestions{
		Title: HeuristicTitle(content),
		Tags:  HeuristicTags(content),
	}
}

// HeuristicTitle capitalizes the first four words longer than three
// characters that are not stop words.
func HeuristicTitle(content string) string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(content), " ")

	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		words = append(words, strings.ToUpper(w[:1])+w[1:])
		if len(words) == titleWords {
			break
		}
	}

	if len(words) == 0 {
		return DefaultTitle
	}
	return strings.Join(words, " ")
}

func HeuristicTags(content string) []string {
	lower := strings.ToLower(content)

	var tags []string
	for _, c := range categories {
		if c.pattern.MatchString(lower) {
			tags = append(tags, c.tag)
		}
	}

	if len(tags) == 0 {
		return []string{DefaultTag}
	}
	return tags
}
