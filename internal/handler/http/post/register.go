package post

import (
	"net/http"

	"portfolio-blog/internal/common/pagination"
	"portfolio-blog/internal/repository"
	postUC "portfolio-blog/internal/usecase/post"
)

// Register registers the post endpoints with the given mux.
func Register(mux *http.ServeMux, repo repository.PostRepository, paginationCfg pagination.Config) {
	mux.Handle("GET /posts", ListHandler{
		UC:            postUC.NewFetchRecentPosts(repo),
		PaginationCfg: paginationCfg,
	})
	mux.Handle("GET /posts/{slug}", GetHandler{UC: postUC.NewGetPostBySlug(repo)})
	mux.Handle("GET /tags/{tag}", TagHandler{UC: postUC.NewFetchPostsByTag(repo)})
	mux.Handle("GET /slugs", SlugsHandler{UC: postUC.NewListPostSlugs(repo)})
}
