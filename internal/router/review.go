package router

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/translation-review/internal/apperr"
	"github.com/DjordjeVuckovic/translation-review/internal/auth"
	"github.com/DjordjeVuckovic/translation-review/internal/domain"
	"github.com/DjordjeVuckovic/translation-review/internal/export"
	"github.com/DjordjeVuckovic/translation-review/internal/review"
	"github.com/DjordjeVuckovic/translation-review/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type ReviewRouter struct {
	e       *echo.Echo
	session *review.Session
	gate    *auth.Gate
}

func NewReviewRouter(e *echo.Echo, session *review.Session, gate *auth.Gate) *ReviewRouter {
	return &ReviewRouter{
		e:       e,
		session: session,
		gate:    gate,
	}
}

func (r *ReviewRouter) Bind() {
	api := r.e.Group("/api")

	api.POST("/login", r.login)
	api.POST("/logout", r.logout)
	api.GET("/auth", r.identity)

	loggedIn := r.gate.Middleware()
	api.GET("/samples", r.listSamples, loggedIn)
	api.GET("/samples/:id", r.getSample, loggedIn)
	api.PUT("/samples/:id/translation", r.annotateTranslation, loggedIn)
	api.PUT("/samples/:id/standards/:index", r.annotateStandard, loggedIn)
	api.GET("/progress", r.progress, loggedIn)
	api.POST("/sync/save", r.saveNow, loggedIn)
	api.GET("/sync/status", r.syncStatus, loggedIn)
	api.GET("/export", r.export, loggedIn)
}

// login godoc
// @Summary Log in
// @Description Compares the password against the shared secret and stores the login flag
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} auth.Identity
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/login [post]
func (r *ReviewRouter) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid login request", err)
	}

	id, err := r.gate.Login(req.User, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, id)
}

// logout godoc
// @Summary Log out
// @Tags auth
// @Success 204
// @Router /api/logout [post]
func (r *ReviewRouter) logout(c echo.Context) error {
	if err := r.gate.Logout(); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// identity godoc
// @Summary Current login state
// @Tags auth
// @Produce json
// @Success 200 {object} auth.Identity
// @Router /api/auth [get]
func (r *ReviewRouter) identity(c echo.Context) error {
	return c.JSON(http.StatusOK, r.gate.Current())
}

// listSamples godoc
// @Summary List samples
// @Description Lists samples in snapshot order with their annotation status
// @Tags samples
// @Produce json
// @Param status query string false "Filter by status" Enums(not-started, partial, done)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(50)
// @Success 200 {object} SampleListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/samples [get]
func (r *ReviewRouter) listSamples(c echo.Context) error {
	var filter *domain.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return apperr.NewValidationWrap("invalid status filter", err)
		}
		filter = &status
	}

	var page pagination.OffsetRequest
	err := echo.QueryParamsBinder(c).
		Int("page", &page.Page).
		Int("size", &page.Size).
		BindError()
	if err != nil {
		return apperr.NewValidationWrap("page and size must be numbers", err)
	}

	return c.JSON(http.StatusOK, SampleListResponse{
		OffsetResult: pagination.Paginate(r.session.List(filter), page),
		Progress:     r.session.Progress(),
	})
}

// getSample godoc
// @Summary Get a sample
// @Tags samples
// @Produce json
// @Param id path string true "Sample id"
// @Success 200 {object} review.SampleView
// @Failure 404 {object} ErrorResponse
// @Router /api/samples/{id} [get]
func (r *ReviewRouter) getSample(c echo.Context) error {
	v, err := r.session.Sample(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// annotateTranslation godoc
// @Summary Rate or comment the Spanish translation
// @Tags annotations
// @Accept json
// @Produce json
// @Param id path string true "Sample id"
// @Param request body AnnotationRequest true "Rating and/or comment"
// @Success 200 {object} review.SampleView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/samples/{id}/translation [put]
func (r *ReviewRouter) annotateTranslation(c echo.Context) error {
	req, rating, err := bindAnnotation(c)
	if err != nil {
		return err
	}
	id := c.Param("id")

	var v review.SampleView
	if req.Rating != nil {
		if v, err = r.session.RateTranslation(id, rating); err != nil {
			return err
		}
	}
	if req.Comment != nil {
		if v, err = r.session.CommentTranslation(id, *req.Comment); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, v)
}

// annotateStandard godoc
// @Summary Rate or comment a matched standard
// @Tags annotations
// @Accept json
// @Produce json
// @Param id path string true "Sample id"
// @Param index path int true "Position of the standard in matched_standards"
// @Param request body AnnotationRequest true "Rating and/or comment"
// @Success 200 {object} review.SampleView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/samples/{id}/standards/{index} [put]
func (r *ReviewRouter) annotateStandard(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return apperr.NewValidationWrap("standard index must be a number", err)
	}
	req, rating, err := bindAnnotation(c)
	if err != nil {
		return err
	}
	id := c.Param("id")

	var v review.SampleView
	if req.Rating != nil {
		if v, err = r.session.RateStandard(id, index, rating); err != nil {
			return err
		}
	}
	if req.Comment != nil {
		if v, err = r.session.CommentStandard(id, index, *req.Comment); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, v)
}

func bindAnnotation(c echo.Context) (AnnotationRequest, domain.Rating, error) {
	var req AnnotationRequest
	if err := c.Bind(&req); err != nil {
		return req, domain.RatingNone, apperr.NewValidationWrap("invalid annotation request", err)
	}
	if req.Rating == nil && req.Comment == nil {
		return req, domain.RatingNone, apperr.NewValidation("rating or comment is required")
	}
	if req.Rating == nil {
		return req, domain.RatingNone, nil
	}
	rating, err := domain.ParseRating(*req.Rating)
	if err != nil {
		return req, domain.RatingNone, apperr.NewValidationWrap(err.Error(), err)
	}
	return req, rating, nil
}

// progress godoc
// @Summary Annotation progress
// @Tags samples
// @Produce json
// @Success 200 {object} annotation.Progress
// @Router /api/progress [get]
func (r *ReviewRouter) progress(c echo.Context) error {
	return c.JSON(http.StatusOK, r.session.Progress())
}

// saveNow godoc
// @Summary Save to the remote store now
// @Description Uploads the merged snapshot immediately. Refused while another manual save runs.
// @Tags sync
// @Produce json
// @Success 200 {object} syncer.Status
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/sync/save [post]
func (r *ReviewRouter) saveNow(c echo.Context) error {
	if err := r.session.SaveNow(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r.session.SyncStatus())
}

// syncStatus godoc
// @Summary Sync indicator
// @Tags sync
// @Produce json
// @Success 200 {object} syncer.Status
// @Router /api/sync/status [get]
func (r *ReviewRouter) syncStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, r.session.SyncStatus())
}

// export godoc
// @Summary Download annotations
// @Description Merged samples and annotations as a dated attachment
// @Tags export
// @Produce application/json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Export format" Enums(json, xlsx) default(json)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Router /api/export [get]
func (r *ReviewRouter) export(c echo.Context) error {
	format, err := export.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return err
	}

	file, err := r.session.Export(format)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
