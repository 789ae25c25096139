package domain

// CategoryGroup holds the items of one category in merge order
type CategoryGroup struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Items    []Item   `json:"items"`
}

// Recommendation is the grouped packing list for one trip. Degraded is set
// when the generic starter list was returned instead of a tailored one.
type Recommendation struct {
	Categories []CategoryGroup `json:"categories"`
	Total      int             `json:"total"`
	Degraded   bool            `json:"degraded"`
}

// NewRecommendation groups items into the fixed category buckets. Items with
// an unrecognised category land in "other"; order within a bucket follows
// the input order.
func NewRecommendation(items []Item) Recommendation {
	buckets := make(map[Category][]Item, len(Categories))
	for _, item := range items {
		c := item.Category
		if !c.Valid() {
			c = CategoryOther
		}
		buckets[c] = append(buckets[c], item)
	}

	groups := make([]CategoryGroup, 0, len(Categories))
	for _, c := range Categories {
		groupItems := buckets[c]
		if groupItems == nil {
			groupItems = []Item{}
		}
		groups = append(groups, CategoryGroup{
			Category: c,
			Label:    c.Label(),
			Items:    groupItems,
		})
	}

	return Recommendation{Categories: groups, Total: len(items)}
}

// Items returns the bucket for category c
func (r Recommendation) Items(c Category) []Item {
	for _, g := range r.Categories {
		if g.Category == c {
			return g.Items
		}
	}
	return nil
}

// All flattens the groups back into one list in category order
func (r Recommendation) All() []Item {
	out := make([]Item, 0, r.Total)
	for _, g := range r.Categories {
		out = append(out, g.Items...)
	}
	return out
}

// Find looks an item up by name
func (r Recommendation) Find(name string) (Item, bool) {
	for _, g := range r.Categories {
		for _, item := range g.Items {
			if item.Name == name {
				return item, true
			}
		}
	}
	return Item{}, false
}
