package schema

// FeedPostTable represents ingested artwork posts awaiting or carrying
// resolved tags ('feed.post').
type FeedPostTable struct {
	Table         string
	ID            string
	PostID        string
	SubName       string
	Author        string
	Caption       string
	CreatedUTC    string
	MediaURL      string
	PHash         string
	SourceLink    string
	EntryID       string
	VisibleTags   string
	InvisibleTags string
	IsDownloaded  string
	IsChecked     string
	IsDisliked    string
	WrongFormat   string
}

// FeedPost is the schema definition for feed.post
var FeedPost = FeedPostTable{
	Table:         "feed.post",
	ID:            "id",
	PostID:        "postid",
	SubName:       "subname",
	Author:        "author",
	Caption:       "caption",
	CreatedUTC:    "createdutc",
	MediaURL:      "mediaurl",
	PHash:         "phash",
	SourceLink:    "sourcelink",
	EntryID:       "entryid",
	VisibleTags:   "visibletags",
	InvisibleTags: "invisibletags",
	IsDownloaded:  "isdownloaded",
	IsChecked:     "ischecked",
	IsDisliked:    "isdisliked",
	WrongFormat:   "wrongformat",
}

func (t FeedPostTable) Columns() []string {
	return []string{
		t.ID, t.PostID, t.SubName, t.Author, t.Caption, t.CreatedUTC,
		t.MediaURL, t.PHash, t.SourceLink, t.EntryID, t.VisibleTags,
		t.InvisibleTags, t.IsDownloaded, t.IsChecked, t.IsDisliked, t.WrongFormat,
	}
}
