package domain

// MissingScore is rendered when a provider has no value for a sentence.
const MissingScore = "-"

// ReportRow is one sentence with the extracted score of each provider.
type ReportRow struct {
	Sentence   string
	AWSScore   string
	AzureScore string
	GCPScore   string
	IBMScore   string
}

// ScoreFor returns the row's score for a provider.
func (r ReportRow) ScoreFor(id ProviderID) string {
	switch id {
	case ProviderAWS:
		return r.AWSScore
	case ProviderAzure:
		return r.AzureScore
	case ProviderGCP:
		return r.GCPScore
	case ProviderIBM:
		return r.IBMScore
	default:
		return MissingScore
	}
}

// BuildReport zips sentences with each provider's score, in sentence order.
func BuildReport(sentences []string, combined *CombinedResult) []ReportRow {
	rows := make([]ReportRow, len(sentences))
	for i, sentence := range sentences {
		rows[i] = ReportRow{
			Sentence:   sentence,
			AWSScore:   scoreOf(combined, ProviderAWS, i),
			AzureScore: scoreOf(combined, ProviderAzure, i),
			GCPScore:   scoreOf(combined, ProviderGCP, i),
			IBMScore:   scoreOf(combined, ProviderIBM, i),
		}
	}
	return rows
}

func scoreOf(combined *CombinedResult, id ProviderID, i int) string {
	if combined == nil {
		return MissingScore
	}
	result := combined.Get(id)
	if result == nil {
		return MissingScore
	}
	if score, ok := result.Score(i); ok {
		return score
	}
	return MissingScore
}
