package entity

// PostRelated holds the optional previous and next posts for sequential navigation.
type PostRelated struct {
	prev Slug
	next Slug
}

// NewPostRelated builds navigation links from raw slug strings. Empty strings
// mean no link. Values are normalized the same way as titles, which leaves
// well-formed slugs unchanged.
func NewPostRelated(prev, next string) PostRelated {
	return PostRelated{
		prev: NewSlugFromText(prev),
		next: NewSlugFromText(next),
	}
}

// Prev returns the previous post slug and whether one is set.
func (r PostRelated) Prev() (Slug, bool) { return r.prev, !r.prev.IsZero() }

// Next returns the next post slug and whether one is set.
func (r PostRelated) Next() (Slug, bool) { return r.next, !r.next.IsZero() }
