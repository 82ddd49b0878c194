// internal/workers/matching/fetch-job-pool/queries/builders_test.go
package queries

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	var query map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &query))
	return query
}

// ==========================
// QUERY BUILDING
// ==========================

func TestBuildQueryRequiresIndex(t *testing.T) {
	_, err := BuildQuery(JobPoolQuery{})
	assert.ErrorIs(t, err, ErrMissingIndex)
}

func TestBuildQueryMatchAllWithoutKeywords(t *testing.T) {
	req, err := BuildQuery(JobPoolQuery{Index: "job_postings"})
	require.NoError(t, err)

	query := decodeBody(t, req.Body)
	boolQuery := query["query"].(map[string]interface{})["bool"].(map[string]interface{})
	must := boolQuery["must"].([]interface{})

	require.Len(t, must, 1)
	assert.Contains(t, must[0].(map[string]interface{}), "match_all")
	assert.NotContains(t, boolQuery, "filter")
}

func TestBuildQueryKeywordsUseMultiMatch(t *testing.T) {
	req, err := BuildQuery(JobPoolQuery{Index: "job_postings", Keywords: "python backend"})
	require.NoError(t, err)

	query := decodeBody(t, req.Body)
	boolQuery := query["query"].(map[string]interface{})["bool"].(map[string]interface{})
	must := boolQuery["must"].([]interface{})

	require.Len(t, must, 1)
	mm := must[0].(map[string]interface{})["multi_match"].(map[string]interface{})
	assert.Equal(t, "python backend", mm["query"])
	assert.Contains(t, mm["fields"], "title^3")
}

func TestBuildQueryFilters(t *testing.T) {
	q := JobPoolQuery{
		Index:           "job_postings",
		Industry:        "fintech",
		JobType:         "full-time",
		ExperienceLevel: "senior",
		PostedAfter:     "2026-08-01T00:00:00Z",
	}
	req, err := BuildQuery(q)
	require.NoError(t, err)

	query := decodeBody(t, req.Body)
	boolQuery := query["query"].(map[string]interface{})["bool"].(map[string]interface{})
	filters := boolQuery["filter"].([]interface{})

	assert.Len(t, filters, 4)
}

func TestBuildQueryLocationKeepsRemoteJobs(t *testing.T) {
	req, err := BuildQuery(JobPoolQuery{Index: "job_postings", Location: "Berlin"})
	require.NoError(t, err)

	query := decodeBody(t, req.Body)
	boolQuery := query["query"].(map[string]interface{})["bool"].(map[string]interface{})
	filters := boolQuery["filter"].([]interface{})

	require.Len(t, filters, 1)
	should := filters[0].(map[string]interface{})["bool"].(map[string]interface{})["should"].([]interface{})
	assert.Len(t, should, 2)
}

func TestBuildQueryRemoteOnly(t *testing.T) {
	req, err := BuildQuery(JobPoolQuery{Index: "job_postings", Location: "Berlin", RemoteOnly: true})
	require.NoError(t, err)

	query := decodeBody(t, req.Body)
	boolQuery := query["query"].(map[string]interface{})["bool"].(map[string]interface{})
	filters := boolQuery["filter"].([]interface{})

	require.Len(t, filters, 1)
	term := filters[0].(map[string]interface{})["term"].(map[string]interface{})
	assert.Equal(t, true, term["remote"])
}

func TestBuildQuerySort(t *testing.T) {
	req, err := BuildQuery(JobPoolQuery{Index: "job_postings", SortBy: "posted_date"})
	require.NoError(t, err)

	query := decodeBody(t, req.Body)
	sort := query["sort"].([]interface{})
	require.Len(t, sort, 1)
	assert.Equal(t, "desc", sort[0].(map[string]interface{})["postedDate"])
}

func TestBuildQueryPagination(t *testing.T) {
	q := JobPoolQuery{Index: "job_postings"}
	q.Pagination.From = 20
	q.Pagination.Size = 10

	req, err := BuildQuery(q)
	require.NoError(t, err)

	require.NotNil(t, req.From)
	require.NotNil(t, req.Size)
	assert.Equal(t, 20, *req.From)
	assert.Equal(t, 10, *req.Size)
}
