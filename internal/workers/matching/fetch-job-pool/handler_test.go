// internal/workers/matching/fetch-job-pool/handler_test.go
package fetchjobpool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"jobmatch-workers/internal/common/logger"
)

const testIndex = "job_postings_test"

func createTestConfig() *Config {
	return &Config{
		Index:   testIndex,
		Timeout: 30 * time.Second,
	}
}

func createTestLogger(t *testing.T) logger.Logger {
	return logger.NewZapAdapter(zaptest.NewLogger(t))
}

func createRealElasticsearchClient(t *testing.T) *elasticsearch.Client {
	cfg := elasticsearch.Config{
		Addresses: []string{"http://localhost:9200"},
	}

	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		t.Skipf("Skipping test: Failed to create Elasticsearch client: %v", err)
		return nil
	}

	res, err := esClient.Info()
	if err != nil {
		t.Skipf("Skipping test: Elasticsearch container not responding: %v", err)
		return nil
	}
	defer res.Body.Close()

	if res.IsError() {
		t.Skipf("Skipping test: Elasticsearch error: %s", res.String())
		return nil
	}

	return esClient
}

func setupRealTestData(t *testing.T, esClient *elasticsearch.Client) {
	esClient.Indices.Delete([]string{testIndex}, esClient.Indices.Delete.WithIgnoreUnavailable(true))

	indexBody := `{
		"mappings": {
			"properties": {
				"title": {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
				"company": {"type": "text"},
				"description": {"type": "text"},
				"requiredSkills": {"type": "text"},
				"location": {"type": "text"},
				"remote": {"type": "boolean"},
				"jobType": {"type": "keyword"},
				"industry": {"type": "keyword"},
				"experienceLevel": {"type": "keyword"},
				"postedDate": {"type": "date"}
			}
		}
	}`

	res, err := esClient.Indices.Create(
		testIndex,
		esClient.Indices.Create.WithBody(strings.NewReader(indexBody)),
	)
	require.NoError(t, err, "Failed to create index")
	res.Body.Close()

	now := time.Now().UTC()
	testDocs := []map[string]interface{}{
		{
			"id":              "job-1",
			"title":           "Senior Python Engineer",
			"company":         "Acme",
			"description":     "Backend services in python",
			"requiredSkills":  []string{"Python", "SQL"},
			"location":        "Berlin, Germany",
			"remote":          false,
			"jobType":         "full-time",
			"industry":        "fintech",
			"experienceLevel": "senior",
			"postedDate":      now.Add(-2 * 24 * time.Hour).Format(time.RFC3339),
		},
		{
			"id":              "job-2",
			"title":           "Data Analyst",
			"company":         "Beta",
			"description":     "Dashboards and reporting",
			"requiredSkills":  []string{"SQL", "Excel"},
			"location":        "Remote",
			"remote":          true,
			"jobType":         "contract",
			"industry":        "healthcare",
			"experienceLevel": "mid",
			"postedDate":      now.Add(-40 * 24 * time.Hour).Format(time.RFC3339),
		},
		{
			"id":              "job-3",
			"title":           "Python Developer",
			"company":         "Gamma",
			"description":     "Tooling and automation in python",
			"requiredSkills":  []string{"Python"},
			"location":        "New York",
			"remote":          false,
			"jobType":         "full-time",
			"industry":        "fintech",
			"experienceLevel": "mid",
			"postedDate":      now.Add(-10 * 24 * time.Hour).Format(time.RFC3339),
		},
	}

	for i, doc := range testDocs {
		docJSON, _ := json.Marshal(doc)
		res, err := esClient.Index(
			testIndex,
			strings.NewReader(string(docJSON)),
			esClient.Index.WithDocumentID(fmt.Sprintf("job-%d", i+1)),
			esClient.Index.WithRefresh("true"),
		)
		require.NoError(t, err, "Failed to index document")
		res.Body.Close()
	}
}

// ==========================
// EXECUTE AGAINST REAL ES
// ==========================

func TestExecuteKeywordSearch(t *testing.T) {
	esClient := createRealElasticsearchClient(t)
	setupRealTestData(t, esClient)

	h := NewHandler(createTestConfig(), esClient, createTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Filters:    Filters{Keywords: "python"},
		Pagination: Pagination{From: 0, Size: 10},
	})

	require.NoError(t, err)
	assert.EqualValues(t, 2, output.TotalHits)
	for _, job := range output.Jobs {
		assert.NotEmpty(t, job.ID)
		assert.NotEmpty(t, job.Title)
	}
}

func TestExecuteFilterByIndustryAndType(t *testing.T) {
	esClient := createRealElasticsearchClient(t)
	setupRealTestData(t, esClient)

	h := NewHandler(createTestConfig(), esClient, createTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Filters:    Filters{Industry: "fintech", JobType: "full-time"},
		Pagination: Pagination{From: 0, Size: 10},
	})

	require.NoError(t, err)
	assert.EqualValues(t, 2, output.TotalHits)
}

func TestExecuteRemoteOnly(t *testing.T) {
	esClient := createRealElasticsearchClient(t)
	setupRealTestData(t, esClient)

	h := NewHandler(createTestConfig(), esClient, createTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Filters:    Filters{RemoteOnly: true},
		Pagination: Pagination{From: 0, Size: 10},
	})

	require.NoError(t, err)
	require.Len(t, output.Jobs, 1)
	assert.Equal(t, "job-2", output.Jobs[0].ID)
	assert.True(t, output.Jobs[0].Remote)
}

func TestExecuteMissingIndex(t *testing.T) {
	esClient := createRealElasticsearchClient(t)

	h := NewHandler(createTestConfig(), esClient, createTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{
		Index:      "does_not_exist",
		Pagination: Pagination{From: 0, Size: 10},
	})

	require.Error(t, err)
}
