package scanner

import (
	"context"
	"log"

	"reddit-monitor/models"
	"reddit-monitor/reddit"
	"reddit-monitor/relevance"
)

// PostsPerQuery bounds how many posts a single (forum, keyword) search may
// return, to cap API cost per cycle.
const PostsPerQuery = 10

// Searcher is the search collaborator. *reddit.Client implements it.
type Searcher interface {
	Search(ctx context.Context, subreddit, query string, limit int) ([]reddit.Post, error)
}

// Scanner finds relevant posts across the configured forums.
type Scanner struct {
	searcher Searcher
}

// NewScanner creates a Scanner using the given search collaborator.
func NewScanner(searcher Searcher) *Scanner {
	return &Scanner{searcher: searcher}
}

// Scan queries every (forum, keyword) pair and returns the posts whose
// relevance against the full keyword list reaches minScore. A failed query is
// logged and skipped; the remaining pairs are still scanned.
func (s *Scanner) Scan(ctx context.Context, forums, keywords []string, minScore int) []models.Discovery {
	var results []models.Discovery
	seen := make(map[string]bool)

	for _, forum := range forums {
		for _, keyword := range keywords {
			posts, err := s.searcher.Search(ctx, forum, keyword, PostsPerQuery)
			if err != nil {
				log.Printf("Error searching r/%s for %q: %v", forum, keyword, err)
				continue
			}

			for _, post := range posts {
				// The same post can match several keyword queries in one cycle.
				if seen[post.ID] {
					continue
				}
				score := relevance.Score(post.Title, post.SelfText, keywords)
				if score < minScore {
					continue
				}
				seen[post.ID] = true
				results = append(results, models.Discovery{
					ID:        post.ID,
					Forum:     forum,
					Title:     post.Title,
					URL:       reddit.PostURL(post.Permalink),
					Score:     post.Score,
					Relevance: score,
				})
			}
		}
	}

	return results
}
