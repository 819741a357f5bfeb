package post

import (
	"net/http"

	"portfolio-blog/internal/handler/http/respond"
	postUC "portfolio-blog/internal/usecase/post"
)

type SlugsHandler struct{ UC *postUC.ListPostSlugs }

// ServeHTTP handles GET /slugs.
func (h SlugsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out, err := h.UC.Execute(r.Context())
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, SlugsResponse{Slugs: ToSlugs(out.Slugs)})
}
