package content

// SearchFields exposes the project's text for search.
func (p Project) SearchFields() map[string][]string {
	return map[string][]string{
		"id":          {p.ID},
		"title":       {p.Title},
		"tagline":     {p.Tagline},
		"description": {p.Description, p.RPGDescription},
		"tech":        p.Tech,
		"rarity":      {string(p.Rarity)},
		"type":        {p.Type},
		"year":        {p.Year},
	}
}

// SearchFields exposes the artwork's text for search.
func (a Artwork) SearchFields() map[string][]string {
	return map[string][]string{
		"id":          {a.ID},
		"title":       {a.Title},
		"description": {a.Description},
		"category":    {a.Category},
		"year":        {a.Year},
	}
}

// SearchFields exposes the post's text for search. The body is left out.
func (b BlogPost) SearchFields() map[string][]string {
	return map[string][]string{
		"id":      {b.Slug},
		"title":   {b.Title},
		"excerpt": {b.Excerpt},
		"tags":    b.Tags,
		"author":  {b.Author},
	}
}
