package post

import (
	"net/http"

	"portfolio-blog/internal/common/pagination"
	"portfolio-blog/internal/handler/http/respond"
	postUC "portfolio-blog/internal/usecase/post"
)

// ListHandler serves the most recent posts.
type ListHandler struct {
	UC            *postUC.FetchRecentPosts
	PaginationCfg pagination.Config
}

// ServeHTTP handles GET /posts?limit=N.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, err := pagination.ParseLimit(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	out, err := h.UC.Execute(r.Context(), postUC.FetchRecentPostsInput{Limit: limit})
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ListResponse{Posts: ToSummaries(out.Posts)})
}
