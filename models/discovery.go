package models

// Discovery represents a single relevant post found during a scan.
// One row per unique Reddit post id; the row is written once and only the
// notified flag changes afterwards.
type Discovery struct {
	ID           string `db:"id"`    // Reddit post id, primary key
	Forum        string `db:"forum"` // subreddit name, without the r/ prefix
	Title        string `db:"title"`
	URL          string `db:"url"`
	Score        int    `db:"score"`         // Reddit's own vote score, informational
	Relevance    int    `db:"relevance"`     // computed at discovery time, 0-10
	DiscoveredAt int64  `db:"discovered_at"` // Unix time of first insertion
	Notified     bool   `db:"notified"`      // set once when included in a sent digest
}
