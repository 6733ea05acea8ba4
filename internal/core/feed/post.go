package feed

// Post is one ingested artwork record awaiting or carrying resolved tags.
// Scraping and image acquisition happen outside this service; the feed only
// tracks the record and its tagging state.
type Post struct {
	ID          string   `json:"id"`
	PostID      string   `json:"post_id"`
	SubName     string   `json:"sub_name"`
	Author      string   `json:"author"`
	Caption     string   `json:"caption"`
	CreatedUTC  int64    `json:"created_utc"`
	MediaURL    string   `json:"media_url"`
	PHash       *string  `json:"phash"`
	SourceLink  *string  `json:"source_link"`
	EntryID     *int     `json:"entry_id"`
	Visible     []string `json:"visible_tags"`
	Invisible   []string `json:"invisible_tags"`
	Downloaded  bool     `json:"is_downloaded"`
	Checked     bool     `json:"is_checked"`
	Disliked    bool     `json:"is_disliked"`
	WrongFormat bool     `json:"wrong_format"`
}

// Tagged reports whether the post already carries a resolved tag set.
func (post *Post) Tagged() bool {
	return len(post.Visible) > 0
}

// EntryCount aggregates how many tagged posts reference a catalog entry,
// feeding popularity curation.
type EntryCount struct {
	EntryID int `json:"entry_id"`
	Posts   int `json:"posts"`
}
