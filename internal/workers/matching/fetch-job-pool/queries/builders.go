// internal/workers/matching/fetch-job-pool/queries/builders.go
package queries

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

var ErrMissingIndex = errors.New("index name is required")

// JobPoolQuery describes one page of the job pool search.
type JobPoolQuery struct {
	Index           string
	Keywords        string
	Location        string
	Industry        string
	JobType         string
	ExperienceLevel string
	RemoteOnly      bool
	PostedAfter     string
	SortBy          string
	Pagination      struct {
		From int
		Size int
	}
}

// BuildQuery builds the Elasticsearch search request for the job pool.
// Keywords score against title, description, skills and company; the
// remaining filters are exact and do not affect relevance.
func BuildQuery(q JobPoolQuery) (*esapi.SearchRequest, error) {
	if q.Index == "" {
		return nil, ErrMissingIndex
	}

	boolQuery := make(map[string]interface{})
	mustClauses := []interface{}{}
	filterClauses := []interface{}{}

	if q.Keywords != "" {
		mustClauses = append(mustClauses, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q.Keywords,
				"fields": []string{"title^3", "description^2", "requiredSkills^2", "company"},
				"type":   "best_fields",
			},
		})
	}

	if q.Location != "" && !q.RemoteOnly {
		// Remote jobs stay in scope even when a location is given.
		filterClauses = append(filterClauses, map[string]interface{}{
			"bool": map[string]interface{}{
				"should": []interface{}{
					map[string]interface{}{
						"match": map[string]interface{}{"location": q.Location},
					},
					map[string]interface{}{
						"term": map[string]interface{}{"remote": true},
					},
				},
				"minimum_should_match": 1,
			},
		})
	}
	if q.RemoteOnly {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"remote": true},
		})
	}

	if q.Industry != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"industry": q.Industry},
		})
	}
	if q.JobType != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"jobType": q.JobType},
		})
	}
	if q.ExperienceLevel != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"experienceLevel": q.ExperienceLevel},
		})
	}
	if q.PostedAfter != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"range": map[string]interface{}{
				"postedDate": map[string]interface{}{"gte": q.PostedAfter},
			},
		})
	}

	if len(mustClauses) == 0 {
		mustClauses = append(mustClauses, map[string]interface{}{"match_all": map[string]interface{}{}})
	}

	boolQuery["must"] = mustClauses
	if len(filterClauses) > 0 {
		boolQuery["filter"] = filterClauses
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": boolQuery,
		},
	}

	switch q.SortBy {
	case "posted_date":
		query["sort"] = []map[string]interface{}{{"postedDate": "desc"}}
	case "title":
		query["sort"] = []map[string]interface{}{{"title.keyword": "asc"}}
	}

	body, _ := json.Marshal(query)

	req := esapi.SearchRequest{
		Index: []string{q.Index},
		Body:  strings.NewReader(string(body)),
		From:  &q.Pagination.From,
		Size:  &q.Pagination.Size,
	}

	return &req, nil
}
