package post

import (
	"net/http"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/handler/http/respond"
	postUC "portfolio-blog/internal/usecase/post"
	"portfolio-blog/internal/utils/text"
)

type TagHandler struct{ UC *postUC.FetchPostsByTag }

// ServeHTTP handles GET /tags/{tag}. A tag nobody uses yields an empty list.
func (h TagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tag := entity.NewSlugFromText(r.PathValue("tag"))

	out, err := h.UC.Execute(r.Context(), postUC.FetchPostsByTagInput{Tag: tag.String()})
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, TagResponse{
		Tag:   text.SlugToTitle(tag.String()),
		Slug:  tag.String(),
		Posts: ToSummaries(out.Posts),
	})
}
