package domain

import (
	"encoding/json"
	"sort"
	"strconv"
)

// ProviderResult is one provider's response for the whole sentence list.
// Each provider keeps its own schema; the concrete types are
// ComprehendResult, TextAnalyticsResult, NaturalLanguageResult and WatsonResult.
type ProviderResult interface {
	// Provider returns the provider that produced the result.
	Provider() ProviderID

	// Score returns the report value for sentence i, extracted from the
	// provider-specific field. Returns false if there is no value.
	Score(i int) (string, bool)

	// ItemErrors returns per-sentence errors reported inside an otherwise
	// successful response.
	ItemErrors() []ItemError
}

// ItemError is a per-sentence error returned by a batch provider.
type ItemError struct {
	Index   int
	Code    string
	Message string
}

// --- Amazon Comprehend ---

// ComprehendResult mirrors the BatchDetectSentiment response.
type ComprehendResult struct {
	ResultList []ComprehendItem      `json:"ResultList"`
	ErrorList  []ComprehendItemError `json:"ErrorList"`
}

// ComprehendItem is the sentiment of one sentence.
type ComprehendItem struct {
	Index          int             `json:"Index"`
	Sentiment      string          `json:"Sentiment"`
	SentimentScore ComprehendScore `json:"SentimentScore"`
}

// ComprehendScore holds the confidence of each sentiment class.
type ComprehendScore struct {
	Positive float64 `json:"Positive"`
	Negative float64 `json:"Negative"`
	Neutral  float64 `json:"Neutral"`
	Mixed    float64 `json:"Mixed"`
}

// ComprehendItemError is a failed sentence in a batch.
type ComprehendItemError struct {
	Index        int    `json:"Index"`
	ErrorCode    string `json:"ErrorCode"`
	ErrorMessage string `json:"ErrorMessage"`
}

// Provider implements ProviderResult.
func (r *ComprehendResult) Provider() ProviderID { return ProviderAWS }

// Score returns the Sentiment label of sentence i.
func (r *ComprehendResult) Score(i int) (string, bool) {
	for _, item := range r.ResultList {
		if item.Index == i {
			return item.Sentiment, item.Sentiment != ""
		}
	}
	return "", false
}

// ItemErrors implements ProviderResult.
func (r *ComprehendResult) ItemErrors() []ItemError {
	if len(r.ErrorList) == 0 {
		return nil
	}
	errs := make([]ItemError, len(r.ErrorList))
	for i, e := range r.ErrorList {
		errs[i] = ItemError{Index: e.Index, Code: e.ErrorCode, Message: e.ErrorMessage}
	}
	return errs
}

// Sort orders results and errors by sentence index.
func (r *ComprehendResult) Sort() {
	sort.SliceStable(r.ResultList, func(a, b int) bool {
		return r.ResultList[a].Index < r.ResultList[b].Index
	})
	sort.SliceStable(r.ErrorList, func(a, b int) bool {
		return r.ErrorList[a].Index < r.ErrorList[b].Index
	})
}

// --- Azure Text Analytics ---

// TextAnalyticsResult holds one document per sentence, in sentence order.
type TextAnalyticsResult struct {
	Documents    []TextAnalyticsDocument `json:"documents"`
	ModelVersion string                  `json:"modelVersion,omitempty"`
}

// TextAnalyticsDocument is either a sentiment analysis or an error.
type TextAnalyticsDocument struct {
	ID               string                   `json:"id"`
	Sentiment        string                   `json:"sentiment,omitempty"`
	ConfidenceScores *TextAnalyticsConfidence `json:"confidenceScores,omitempty"`
	Sentences        []TextAnalyticsSentence  `json:"sentences,omitempty"`
	Warnings         []TextAnalyticsWarning   `json:"warnings,omitempty"`
	Error            *TextAnalyticsError      `json:"error,omitempty"`
}

// TextAnalyticsConfidence holds the confidence of each sentiment class.
type TextAnalyticsConfidence struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// TextAnalyticsSentence is the sentiment of a sentence within a document.
type TextAnalyticsSentence struct {
	Text             string                  `json:"text"`
	Sentiment        string                  `json:"sentiment"`
	ConfidenceScores TextAnalyticsConfidence `json:"confidenceScores"`
	Offset           int                     `json:"offset"`
	Length           int                     `json:"length"`
}

// TextAnalyticsWarning is a non-fatal service warning.
type TextAnalyticsWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TextAnalyticsError is a per-document error.
type TextAnalyticsError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Provider implements ProviderResult.
func (r *TextAnalyticsResult) Provider() ProviderID { return ProviderAzure }

// Score returns the document sentiment label of sentence i.
func (r *TextAnalyticsResult) Score(i int) (string, bool) {
	if i < 0 || i >= len(r.Documents) {
		return "", false
	}
	doc := r.Documents[i]
	if doc.Error != nil || doc.Sentiment == "" {
		return "", false
	}
	return doc.Sentiment, true
}

// ItemErrors implements ProviderResult.
func (r *TextAnalyticsResult) ItemErrors() []ItemError {
	var errs []ItemError
	for i, doc := range r.Documents {
		if doc.Error != nil {
			errs = append(errs, ItemError{Index: i, Code: doc.Error.Code, Message: doc.Error.Message})
		}
	}
	return errs
}

// --- Google Cloud Natural Language ---

// NaturalLanguageResult holds one analyzeSentiment response per sentence.
// It serialises as a plain array.
type NaturalLanguageResult struct {
	Responses []NaturalLanguageResponse
}

// NaturalLanguageResponse mirrors the documents.analyzeSentiment response.
type NaturalLanguageResponse struct {
	DocumentSentiment NaturalLanguageSentiment  `json:"documentSentiment"`
	Language          string                    `json:"language"`
	Sentences         []NaturalLanguageSentence `json:"sentences"`
}

// NaturalLanguageSentiment is a score in [-1, 1] and a non-negative magnitude.
type NaturalLanguageSentiment struct {
	Magnitude float64 `json:"magnitude"`
	Score     float64 `json:"score"`
}

// NaturalLanguageSentence is the sentiment of one detected sentence.
type NaturalLanguageSentence struct {
	Text      NaturalLanguageText      `json:"text"`
	Sentiment NaturalLanguageSentiment `json:"sentiment"`
}

// NaturalLanguageText is a span of the analysed text.
type NaturalLanguageText struct {
	Content     string `json:"content"`
	BeginOffset int64  `json:"beginOffset"`
}

// Provider implements ProviderResult.
func (r *NaturalLanguageResult) Provider() ProviderID { return ProviderGCP }

// Score returns documentSentiment.score of sentence i.
func (r *NaturalLanguageResult) Score(i int) (string, bool) {
	if i < 0 || i >= len(r.Responses) {
		return "", false
	}
	return strconv.FormatFloat(r.Responses[i].DocumentSentiment.Score, 'f', -1, 64), true
}

// ItemErrors implements ProviderResult. Per-sentence calls fail as a whole.
func (r *NaturalLanguageResult) ItemErrors() []ItemError { return nil }

// MarshalJSON encodes the responses as an array.
func (r *NaturalLanguageResult) MarshalJSON() ([]byte, error) {
	if r.Responses == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Responses)
}

// --- IBM Watson NLU ---

// WatsonResult holds one analyze response per sentence.
// It serialises as a plain array.
type WatsonResult struct {
	Responses []WatsonResponse
}

// WatsonResponse mirrors the /v1/analyze response with the sentiment feature.
type WatsonResponse struct {
	Language  string          `json:"language"`
	Sentiment WatsonSentiment `json:"sentiment"`
	Usage     *WatsonUsage    `json:"usage,omitempty"`
}

// WatsonSentiment holds the document-level sentiment.
type WatsonSentiment struct {
	Document WatsonDocumentSentiment `json:"document"`
}

// WatsonDocumentSentiment is a score in [-1, 1] and its label.
type WatsonDocumentSentiment struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// WatsonUsage reports billing units consumed by a request.
type WatsonUsage struct {
	TextUnits      int `json:"text_units"`
	TextCharacters int `json:"text_characters"`
	Features       int `json:"features"`
}

// Provider implements ProviderResult.
func (r *WatsonResult) Provider() ProviderID { return ProviderIBM }

// Score returns sentiment.document.label of sentence i.
func (r *WatsonResult) Score(i int) (string, bool) {
	if i < 0 || i >= len(r.Responses) {
		return "", false
	}
	label := r.Responses[i].Sentiment.Document.Label
	return label, label != ""
}

// ItemErrors implements ProviderResult. Per-sentence calls fail as a whole.
func (r *WatsonResult) ItemErrors() []ItemError { return nil }

// MarshalJSON encodes the responses as an array.
func (r *WatsonResult) MarshalJSON() ([]byte, error) {
	if r.Responses == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Responses)
}
