package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sentimeter/internal/core/domain"
)

func sampleCombined() *domain.CombinedResult {
	return &domain.CombinedResult{
		AWS: &domain.ComprehendResult{
			ResultList: []domain.ComprehendItem{{Index: 0, Sentiment: "POSITIVE"}},
			ErrorList:  []domain.ComprehendItemError{},
		},
		GCP: &domain.NaturalLanguageResult{Responses: []domain.NaturalLanguageResponse{
			{DocumentSentiment: domain.NaturalLanguageSentiment{Magnitude: 0.9, Score: 0.9}, Language: "en"},
		}},
	}
}

func sampleRows() []domain.ReportRow {
	return []domain.ReportRow{
		{Sentence: "I <3 it & more", AWSScore: "POSITIVE", AzureScore: "-", GCPScore: "0.9", IBMScore: "-"},
	}
}

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	target := domain.OutputTarget{
		ResultsPath: filepath.Join(dir, "result.json"),
		ReportPath:  filepath.Join(dir, "result.html"),
	}

	require.NoError(t, NewWriter().Write(target, sampleCombined(), sampleRows()))

	results, err := os.ReadFile(target.ResultsPath)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(results), "}\n"))
	assert.Contains(t, string(results), "\n  \"aws\": {\n")
	assert.Contains(t, string(results), `"azure": null`)
	assert.Contains(t, string(results), `"ibm": null`)

	report, err := os.ReadFile(target.ReportPath)
	require.NoError(t, err)
	html := string(report)
	assert.Contains(t, html, "<th>Amazon Comprehend</th>")
	assert.Contains(t, html, "<th>IBM Watson NLU</th>")
	assert.Contains(t, html, "I &lt;3 it &amp; more", "sentences are escaped")
	assert.Contains(t, html, `<td class="score">0.9</td>`)
}

func TestWriter_Write_NoReport(t *testing.T) {
	dir := t.TempDir()
	target := domain.OutputTarget{ResultsPath: filepath.Join(dir, "result.json")}

	require.NoError(t, NewWriter().Write(target, sampleCombined(), sampleRows()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriter_Write_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the new one"+strings.Repeat(".", 500)), 0o644))

	require.NoError(t, NewWriter().Write(domain.OutputTarget{ResultsPath: path}, &domain.CombinedResult{}, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"aws\": null,\n  \"azure\": null,\n  \"gcp\": null,\n  \"ibm\": null\n}\n", string(data))
}

func TestWriter_Write_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	target := domain.OutputTarget{ResultsPath: filepath.Join(dir, "out", "nested", "result.json")}

	require.NoError(t, NewWriter().Write(target, sampleCombined(), nil))

	_, err := os.Stat(target.ResultsPath)
	assert.NoError(t, err)
}

func TestWriter_Write_BadTemplateWritesNothing(t *testing.T) {
	dir := t.TempDir()
	tmplPath := filepath.Join(dir, "broken.tmpl")
	require.NoError(t, os.WriteFile(tmplPath, []byte("{{range .Rows}}"), 0o644))
	target := domain.OutputTarget{
		ResultsPath:  filepath.Join(dir, "result.json"),
		ReportPath:   filepath.Join(dir, "result.html"),
		TemplatePath: tmplPath,
	}

	err := NewWriter().Write(target, sampleCombined(), sampleRows())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutput))
	_, statErr := os.Stat(target.ResultsPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriter_Write_EmptyResultsPath(t *testing.T) {
	err := NewWriter().Write(domain.OutputTarget{}, sampleCombined(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutput))
}

func TestRenderReport_CustomTemplate(t *testing.T) {
	tmplPath := filepath.Join(t.TempDir(), "report.tmpl")
	require.NoError(t, os.WriteFile(tmplPath, []byte(`{{range .Rows}}{{.Sentence}}={{.GCPScore}};{{end}}`), 0o644))

	out, err := RenderReport(tmplPath, []domain.ReportRow{
		{Sentence: "a", GCPScore: "0.1"},
		{Sentence: "b", GCPScore: "-"},
	})

	require.NoError(t, err)
	assert.Equal(t, "a=0.1;b=-;", string(out))
}

func TestRenderReport_MissingTemplate(t *testing.T) {
	_, err := RenderReport(filepath.Join(t.TempDir(), "missing.tmpl"), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutput))
}

func TestEncodeResults_Deterministic(t *testing.T) {
	a, err := EncodeResults(sampleCombined())
	require.NoError(t, err)
	b, err := EncodeResults(sampleCombined())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
