// Package post provides the read-only query use cases of the blog: recent
// posts, posts by tag, a post by slug and the list of all slugs. Each use
// case delegates to the repository and returns its result unchanged.
package post
