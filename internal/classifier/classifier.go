// Package classifier turns free-text user input into a weighted set of
// event category labels. It layers three strategies: direct keyword
// matching against the taxonomy, the external NLP service, and a local
// keyword/token fallback. Classification never fails — at worst the
// result is empty.
package classifier

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/wanderto/wanderto-backend/internal/domain"
	"github.com/wanderto/wanderto-backend/internal/taxonomy"
)

// Confidence assigned per strategy. Direct vocabulary hits are most
// trusted; raw token labels the least.
const (
	scoreDirectCategory  = 0.95
	scoreDirectMood      = 0.9
	scoreDirectExpanded  = 0.8
	remoteExpandedFactor = 0.8
	scoreFallbackKw      = 0.7
	scoreToken           = 0.6

	// Tokens this short are too ambiguous to use as interest labels.
	minTokenLen = 4
)

var tokenSplit = regexp.MustCompile(`\W+`)

// remoteClassifier is the external NLP service surface the classifier needs.
type remoteClassifier interface {
	Classify(ctx context.Context, text string, threshold float64) ([]domain.CategoryScore, error)
}

// Classifier classifies user input using ordered strategies.
type Classifier struct {
	tax       *taxonomy.Taxonomy
	remote    remoteClassifier
	threshold float64
	log       *slog.Logger

	// moodKeys is the deterministic iteration order for MoodMappings.
	moodKeys []domain.Category
	// fallbackKeys is the deterministic iteration order for FallbackKeywords.
	fallbackKeys []string
}

// New creates a Classifier. The threshold is forwarded to the remote
// service; labels scored below it are never returned.
func New(tax *taxonomy.Taxonomy, remote remoteClassifier, threshold float64, logger *slog.Logger) *Classifier {
	moodKeys := make([]domain.Category, 0, len(tax.MoodMappings))
	for k := range tax.MoodMappings {
		moodKeys = append(moodKeys, k)
	}
	sort.Slice(moodKeys, func(i, j int) bool { return moodKeys[i] < moodKeys[j] })

	fallbackKeys := make([]string, 0, len(tax.FallbackKeywords))
	for k := range tax.FallbackKeywords {
		fallbackKeys = append(fallbackKeys, k)
	}
	sort.Strings(fallbackKeys)

	return &Classifier{
		tax:          tax,
		remote:       remote,
		threshold:    threshold,
		log:          logger.With("component", "classifier"),
		moodKeys:     moodKeys,
		fallbackKeys: fallbackKeys,
	}
}

// Classify runs the strategies in order and returns the first non-empty
// result. It never returns an error: remote failures fall through to the
// local fallback, and classifying the same input twice yields the same
// labels (modulo remote service behavior).
func (c *Classifier) Classify(ctx context.Context, text string) domain.ClassificationResult {
	lower := strings.ToLower(text)

	if result := c.directMatch(lower); !result.Empty() {
		return result
	}

	if result := c.remoteMatch(ctx, text); !result.Empty() {
		return result
	}

	return c.localFallback(lower)
}

// directMatch scans the lowered input for literal occurrences of category
// and mood vocabulary. Substring checks are intentionally unanchored:
// "festival" matches inside "festivals".
func (c *Classifier) directMatch(lower string) domain.ClassificationResult {
	var result domain.ClassificationResult

	for _, cat := range c.tax.Categories {
		if strings.Contains(lower, string(cat)) {
			result.Add(cat, scoreDirectCategory)
		}
	}

	for _, mood := range c.moodKeys {
		if !strings.Contains(lower, string(mood)) {
			continue
		}
		result.Add(mood, scoreDirectMood)
		for _, cat := range c.tax.MoodMappings[mood] {
			result.Add(cat, scoreDirectExpanded)
		}
	}

	return result
}

// remoteMatch consults the external NLP service. Mood labels in the
// response additionally expand to their mapped categories at a reduced
// score. Any client error means an empty result.
func (c *Classifier) remoteMatch(ctx context.Context, text string) domain.ClassificationResult {
	var result domain.ClassificationResult

	scores, err := c.remote.Classify(ctx, text, c.threshold)
	if err != nil {
		c.log.WarnContext(ctx, "remote classification unavailable, falling back",
			slog.String("error", err.Error()))
		return result
	}

	for _, s := range scores {
		result.Add(s.Label, s.Score)
		if c.tax.IsMood(s.Label) {
			for _, cat := range c.tax.MoodMappings[s.Label] {
				result.Add(cat, s.Score*remoteExpandedFactor)
			}
		}
	}

	return result
}

// localFallback matches the distinct fallback keyword table, and as a last
// resort emits the input's own significant tokens as ad-hoc interest labels.
func (c *Classifier) localFallback(lower string) domain.ClassificationResult {
	var result domain.ClassificationResult

	for _, kw := range c.fallbackKeys {
		if !strings.Contains(lower, kw) {
			continue
		}
		for _, cat := range c.tax.FallbackKeywords[kw] {
			result.Add(cat, scoreFallbackKw)
		}
	}
	if !result.Empty() {
		return result
	}

	for _, token := range tokenSplit.Split(lower, -1) {
		if len(token) < minTokenLen || c.tax.Stopwords[token] {
			continue
		}
		result.Add(domain.Category(token), scoreToken)
	}

	return result
}
