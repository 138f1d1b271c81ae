package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"realty-bot/config"
	"realty-bot/nlp"
)

const searchAPIURL = "https://www.googleapis.com/customsearch/v1"

// searchRateLimiter keeps us inside the free-tier request budget.
var searchRateLimiter = NewRateLimiter(60)

// searchItem mirrors one entry of the Programmable Search response,
// including the pagemap structures the ranker scores.
type searchItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
	Pagemap struct {
		Metatags []map[string]string `json:"metatags,omitempty"`
		Product  []struct {
			Name string `json:"name,omitempty"`
		} `json:"product,omitempty"`
		Offer []struct {
			Price string `json:"price,omitempty"`
		} `json:"offer,omitempty"`
		CSEImage []struct {
			Src string `json:"src,omitempty"`
		} `json:"cse_image,omitempty"`
	} `json:"pagemap"`
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

// SearchListings runs the enhanced query against the web-search
// provider and maps hits into the ranker's input shape. Any failure
// degrades to an empty hit list; the pipeline must keep working
// without search results.
func SearchListings(ctx context.Context, cfg *config.Config, query string) []nlp.SearchHit {
	if cfg.SearchAPIKey == "" || cfg.SearchEngineID == "" {
		return nil
	}

	hits, err := fetchSearchResults(ctx, cfg, query)
	if err != nil {
		slog.Error("Web search failed, continuing without results",
			"error", err,
			"queryLength", len(query),
		)
		return nil
	}
	return hits
}

func fetchSearchResults(ctx context.Context, cfg *config.Config, query string) ([]nlp.SearchHit, error) {
	if err := searchRateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("key", cfg.SearchAPIKey)
	params.Set("cx", cfg.SearchEngineID)
	params.Set("q", query)
	params.Set("num", "10")

	req, err := http.NewRequestWithContext(ctx, "GET", searchAPIURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("Search API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("search API error: %s", resp.Status)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	hits := make([]nlp.SearchHit, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		hits = append(hits, nlp.SearchHit{
			Title:    item.Title,
			Snippet:  item.Snippet,
			Link:     item.Link,
			Metadata: metadataFromItem(item),
		})
	}

	slog.Info("Web search completed", "results", len(hits))
	return hits, nil
}

// metadataFromItem flattens the pagemap into the structured-metadata
// flags the ranker rewards.
func metadataFromItem(item searchItem) *nlp.StructuredMetadata {
	pm := item.Pagemap
	if len(pm.Metatags) == 0 && len(pm.Product) == 0 && len(pm.Offer) == 0 && len(pm.CSEImage) == 0 {
		return nil
	}

	meta := &nlp.StructuredMetadata{
		HasMetatags: len(pm.Metatags) > 0,
		HasProduct:  len(pm.Product) > 0,
		HasOffer:    len(pm.Offer) > 0,
	}

	if len(pm.Metatags) > 0 {
		meta.Description = pm.Metatags[0]["og:description"]
	}
	if len(pm.Product) > 0 {
		meta.Name = pm.Product[0].Name
	}
	if len(pm.Offer) > 0 {
		meta.Price = pm.Offer[0].Price
	}
	if len(pm.CSEImage) > 0 {
		meta.Image = pm.CSEImage[0].Src
	}

	return meta
}
