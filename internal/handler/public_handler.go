package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devmart/internal/db"
	"github.com/devmart/internal/render"
	"github.com/devmart/internal/service"
	"github.com/gin-gonic/gin"
)

var layoutTemplates = map[string]string{
	"Layout":  "layout.html",
	"Layout2": "layout2.html",
	"Layout3": "layout3.html",
}

// ShowHome renders the page behind the configured home slug.
func (a *API) ShowHome(c *gin.Context) {
	settings := a.siteSettings(c)
	a.renderSlug(c, settings.HomeSlug)
}

// ServePage 是兜底路由：把未匹配的 GET 路径当作页面 slug 解析。
func (a *API) ServePage(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		respondError(c, http.StatusNotFound, "not found")
		return
	}

	slug := strings.Trim(c.Request.URL.Path, "/")
	if slug == "" || !service.ValidateSlug(slug) {
		a.renderNotFound(c)
		return
	}

	a.renderSlug(c, slug)
}

func (a *API) renderSlug(c *gin.Context, slug string) {
	viewer := a.viewerFrom(c)
	result := a.renderer.Render(c.Request.Context(), slug, viewer)

	switch result.State {
	case render.StateNotFound:
		a.renderNotFound(c)
	case render.StateServerError:
		a.renderHTML(c, http.StatusInternalServerError, "error500.html", gin.H{
			"title": "Something went wrong",
		})
	default:
		settings := a.siteSettings(c)
		headerNav, _ := a.navigation.List(db.NavigationHeader, true)
		footerNav, _ := a.navigation.List(db.NavigationFooter, true)

		a.renderHTML(c, http.StatusOK, layoutTemplates[result.Layout], gin.H{
			"title":        result.Head.Title + " | " + settings.SiteName,
			"head":         result.Head,
			"body":         result.Body,
			"empty":        result.Empty,
			"draftPreview": result.DraftPreview,
			"headerNav":    headerNav,
			"footerNav":    footerNav,
		})
	}
}

func (a *API) renderNotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "error404.html", gin.H{
		"title": "Page not found",
	})
}

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CreateContactSubmission 接收联系区块的表单提交。
func (a *API) CreateContactSubmission(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload, "Invalid submission") {
		return
	}

	submission, err := a.contacts.Submit(service.ContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrSubmissionInvalid) {
			respondError(c, http.StatusBadRequest, "Please fill in your name, email and message")
			return
		}
		respondError(c, http.StatusInternalServerError, "Something went wrong, please try again later")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Thanks! We received your message.",
		"reference": submission.Reference,
	})
}
