package router

import (
	"github.com/DjordjeVuckovic/translation-review/internal/annotation"
	"github.com/DjordjeVuckovic/translation-review/internal/review"
	"github.com/DjordjeVuckovic/translation-review/pkg/pagination"
)

type LoginRequest struct {
	User     string `json:"user" example:"ana"`
	Password string `json:"password" example:"s3cret"`
}

// AnnotationRequest updates a rating, a comment or both. Omitted fields are
// left untouched.
type AnnotationRequest struct {
	Rating  *string `json:"rating,omitempty" enums:"Worst,Middle,Best" example:"Best"`
	Comment *string `json:"comment,omitempty" example:"Too literal in the second sentence"`
}

// SampleListResponse is one page of samples plus the overall progress.
type SampleListResponse struct {
	*pagination.OffsetResult[review.SampleView]
	Progress annotation.Progress `json:"progress"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}
