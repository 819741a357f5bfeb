package post

import (
	"net/http"

	"portfolio-blog/internal/handler/http/respond"
	postUC "portfolio-blog/internal/usecase/post"
)

type GetHandler struct{ UC *postUC.GetPostBySlug }

// ServeHTTP handles GET /posts/{slug}. Unknown slugs answer 404.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out, err := h.UC.Execute(r.Context(), postUC.GetPostBySlugInput{Slug: r.PathValue("slug")})
	if err != nil {
		writeQueryError(w, r, err)
		return
	}
	if out.Post == nil {
		respond.SafeError(r.Context(), w, http.StatusNotFound, errPostNotFound)
		return
	}

	respond.JSON(w, http.StatusOK, ToDetail(out.Post))
}
