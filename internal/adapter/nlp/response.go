package nlp

// classifyRequest is the wire request for the classification service.
type classifyRequest struct {
	Text      string  `json:"text"`
	Threshold float64 `json:"threshold"`
}

// classifyResponse is the wire response: one scored label per category the
// service considered relevant at the requested threshold.
type classifyResponse struct {
	Categories []apiCategory `json:"categories"`
}

type apiCategory struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
