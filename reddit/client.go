package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.reddit.com"

// Post is a single search result from a subreddit search.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	SelfText  string `json:"selftext"`
	Permalink string `json:"permalink"`
	Score     int    `json:"score"`
}

// listing mirrors the wrapper Reddit puts around search results.
type listing struct {
	Data struct {
		Children []struct {
			Data Post `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Client queries Reddit's public search endpoint. Read-only, no OAuth.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a Reddit search client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
		userAgent:  "reddit-monitor/0.1.0",
	}
}

// Search returns up to limit posts from the last day in the given subreddit
// matching the query, newest first.
func (c *Client) Search(ctx context.Context, subreddit, query string, limit int) ([]Post, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("restrict_sr", "1")
	params.Set("sort", "new")
	params.Set("t", "day")
	params.Set("limit", fmt.Sprintf("%d", limit))

	searchURL := fmt.Sprintf("%s/r/%s/search.json?%s", c.baseURL, url.PathEscape(subreddit), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request for r/%s: %w", subreddit, err)
	}
	// Reddit rejects requests with a default Go user agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request for r/%s failed: %w", subreddit, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search for r/%s returned status %d", subreddit, resp.StatusCode)
	}

	var result listing
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response for r/%s: %w", subreddit, err)
	}

	posts := make([]Post, 0, len(result.Data.Children))
	for _, child := range result.Data.Children {
		posts = append(posts, child.Data)
	}
	return posts, nil
}

// PostURL builds the canonical link for a post's permalink path.
func PostURL(permalink string) string {
	return "https://reddit.com" + permalink
}
