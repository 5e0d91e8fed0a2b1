package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"tvusm/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// NewsClient indexes published news articles for full-text search. The
// client is optional: when no Elasticsearch URL is configured the news
// service falls back to plain SQL listing.
type NewsClient struct {
	client *elasticsearch.Client
	index  string
}

type Config struct {
	URL        string
	Username   string
	Password   string
	Index      string
	MaxRetries int
}

func NewNewsClient(cfg Config) (*NewsClient, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     []string{cfg.URL},
		Username:      cfg.Username,
		Password:      cfg.Password,
		RetryOnStatus: []int{502, 503, 504, 429},
		MaxRetries:    cfg.MaxRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	c := &NewsClient{client: es, index: cfg.Index}

	if err := c.ensureIndex(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return c, nil
}

func (c *NewsClient) ensureIndex(ctx context.Context) error {
	req := esapi.IndicesExistsRequest{Index: []string{c.index}}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil
	}

	mapping := map[string]any{
		"settings": map[string]any{
			"number_of_shards":   1,
			"number_of_replicas": 0,
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"id":         map[string]any{"type": "long"},
				"title":      map[string]any{"type": "text"},
				"content":    map[string]any{"type": "text"},
				"category":   map[string]any{"type": "keyword"},
				"published":  map[string]any{"type": "boolean"},
				"created_at": map[string]any{"type": "date"},
			},
		},
	}

	mappingJSON, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	createReq := esapi.IndicesCreateRequest{
		Index: c.index,
		Body:  strings.NewReader(string(mappingJSON)),
	}

	createRes, err := createReq.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("failed to create index: %s", createRes.String())
	}

	slog.Info("Created Elasticsearch index", "index", c.index)
	return nil
}

// IndexNews upserts one article document.
func (c *NewsClient) IndexNews(ctx context.Context, article *models.News) error {
	doc, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("failed to marshal article: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      c.index,
		DocumentID: strconv.FormatInt(article.ID, 10),
		Body:       strings.NewReader(string(doc)),
		Refresh:    "false",
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return fmt.Errorf("failed to index article: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}

	return nil
}

// Search runs a fuzzy multi-match over published articles.
func (c *NewsClient) Search(ctx context.Context, query, category string, page, pageSize int) ([]models.News, error) {
	must := []map[string]any{
		{"term": map[string]any{"published": true}},
	}

	if query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"title^2", "content"},
				"fuzziness": "AUTO",
			},
		})
	}

	if category != "" {
		must = append(must, map[string]any{
			"term": map[string]any{"category": category},
		})
	}

	from := 0
	if page > 0 && pageSize > 0 {
		from = (page - 1) * pageSize
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	searchRequest := map[string]any{
		"query": map[string]any{"bool": map[string]any{"must": must}},
		"sort": []map[string]any{
			{"_score": map[string]any{"order": "desc"}},
			{"id": map[string]any{"order": "desc"}},
		},
		"from": from,
		"size": pageSize,
	}

	searchJSON, err := json.Marshal(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search query: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{c.index},
		Body:  strings.NewReader(string(searchJSON)),
	}

	res, err := req.Do(ctx, c.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.String())
	}

	var response struct {
		Hits struct {
			Hits []struct {
				Source models.News `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	articles := make([]models.News, len(response.Hits.Hits))
	for i, hit := range response.Hits.Hits {
		articles[i] = hit.Source
	}

	return articles, nil
}
