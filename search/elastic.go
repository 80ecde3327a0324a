// Package search keeps an Elasticsearch index of the catalog.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/utils"
	"github.com/elastic/go-elasticsearch/v9"
)

// Config holds the cluster connection settings.
type Config struct {
	URL      string
	Username string
	Password string
	Index    string
}

// ProductIndex implements catalog search over Elasticsearch.
type ProductIndex struct {
	es    *elasticsearch.Client
	index string
}

// Document is the indexed shape of a product.
type Document struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id,omitempty"`
	Price       string `json:"price"`
	SKU         string `json:"sku,omitempty"`
}

// NewClient connects and checks the cluster answers. It returns nil, nil
// when no URL is configured.
func NewClient(cfg Config) (*ProductIndex, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	utils.LogInfo("Connecting to Elasticsearch at: %s", cfg.URL)

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		utils.LogError("Elasticsearch error response: %s", body)
		return nil, fmt.Errorf("elasticsearch error: %s", res.Status())
	}

	utils.LogInfo("Successfully connected to Elasticsearch")
	return New(client, cfg.Index), nil
}

func New(client *elasticsearch.Client, index string) *ProductIndex {
	if index == "" {
		index = "products"
	}
	return &ProductIndex{es: client, index: index}
}

func NewDocument(p *models.Product) Document {
	doc := Document{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		SKU:         p.SKU,
	}
	if p.CategoryID != nil {
		doc.CategoryID = *p.CategoryID
	}
	return doc
}

func (x *ProductIndex) Index(ctx context.Context, p *models.Product) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(NewDocument(p)); err != nil {
		return err
	}

	res, err := x.es.Index(x.index, &buf,
		x.es.Index.WithContext(ctx),
		x.es.Index.WithDocumentID(p.ID),
	)
	if err != nil {
		return fmt.Errorf("index product %s: %w", p.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index product %s: %s", p.ID, res.Status())
	}
	return nil
}

func (x *ProductIndex) Delete(ctx context.Context, id string) error {
	res, err := x.es.Delete(x.index, id, x.es.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete product %s: %s", id, res.Status())
	}
	return nil
}

// Query builds the multi_match search body.
func Query(query string, from, size int) map[string]interface{} {
	return map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from":    from,
		"size":    size,
		"_source": false,
	}
}

// Search returns the total hit count and the matching product ids in
// relevance order.
func (x *ProductIndex) Search(ctx context.Context, query string, limit, offset int) (int64, []string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(Query(query, offset, limit)); err != nil {
		return 0, nil, err
	}

	res, err := x.es.Search(
		x.es.Search.WithContext(ctx),
		x.es.Search.WithIndex(x.index),
		x.es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search error: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search error: %s", res.Status())
	}
	return decodeHits(res.Body)
}

func decodeHits(body io.Reader) (int64, []string, error) {
	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(body).Decode(&r); err != nil {
		return 0, nil, err
	}

	ids := make([]string, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		ids[i] = hit.ID
	}
	return r.Hits.Total.Value, ids, nil
}
