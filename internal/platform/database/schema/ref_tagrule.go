package schema

// RefTagRuleTable represents keyword-driven tag rules ('ref.tagrule').
type RefTagRuleTable struct {
	Table         string
	ID            string
	CheckMode     string
	Keywords      string
	VisibleTags   string
	InvisibleTags string
}

// RefTagRule is the schema definition for ref.tagrule
var RefTagRule = RefTagRuleTable{
	Table:         "ref.tagrule",
	ID:            "id",
	CheckMode:     "checkmode",
	Keywords:      "keywords",
	VisibleTags:   "visibletags",
	InvisibleTags: "invisibletags",
}

func (t RefTagRuleTable) Columns() []string {
	return []string{t.ID, t.CheckMode, t.Keywords, t.VisibleTags, t.InvisibleTags}
}
