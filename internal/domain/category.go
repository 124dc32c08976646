package domain

// Category is a short string tag describing an event's topic or vibe.
// Labels are either drawn from the static taxonomy or emitted by the
// fallback classifier as ad-hoc interest tokens.
type Category string

func (c Category) String() string { return string(c) }

// CategoryScore pairs a category label with a classifier confidence.
// Confidence is in [0,1]; higher means more certain.
type CategoryScore struct {
	Label Category
	Score float64
}

// ClassificationResult is the weighted label set produced by classifying
// free-text input. Labels and Scores are parallel: Scores[i] is the
// confidence for Labels[i]. Labels never contains duplicates.
type ClassificationResult struct {
	Labels []Category
	Scores []float64
}

// Add appends a label with its score unless the label is already present.
// Returns true if the label was added.
func (r *ClassificationResult) Add(label Category, score float64) bool {
	if r.Contains(label) {
		return false
	}
	r.Labels = append(r.Labels, label)
	r.Scores = append(r.Scores, score)
	return true
}

// Contains reports whether the label is already in the result.
func (r *ClassificationResult) Contains(label Category) bool {
	for _, l := range r.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Empty reports whether the classification produced no labels.
func (r *ClassificationResult) Empty() bool {
	return len(r.Labels) == 0
}
