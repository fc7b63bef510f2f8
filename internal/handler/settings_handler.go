package handler

import (
	"net/http"

	"github.com/devmart/internal/service"
	"github.com/devmart/internal/theme"
	"github.com/gin-gonic/gin"
)

type settingsPayload struct {
	SiteName       string `json:"site_name"`
	SiteLogoURL    string `json:"site_logo_url"`
	HomeSlug       string `json:"home_slug"`
	BrandPrimary   string `json:"brand_primary"`
	BrandSecondary string `json:"brand_secondary"`
	BrandAccent    string `json:"brand_accent"`
}

// ShowSettings 渲染站点设置页面
func (a *API) ShowSettings(c *gin.Context) {
	settings, err := a.settings.GetSettings()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "settings.html", gin.H{
			"title": "站点设置",
			"error": "加载站点设置失败，请稍后再试",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "settings.html", gin.H{
		"title":    "站点设置",
		"settings": settings,
	})
}

// GetSettings 返回站点设置
func (a *API) GetSettings(c *gin.Context) {
	settings, err := a.settings.GetSettings()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "加载站点设置失败")
		return
	}
	c.JSON(http.StatusOK, settingsResponse(settings))
}

// UpdateSettings 保存站点设置
func (a *API) UpdateSettings(c *gin.Context) {
	var payload settingsPayload
	if !bindJSON(c, &payload, "设置数据格式不正确") {
		return
	}

	settings, err := a.settings.UpdateSettings(service.SiteSettingsInput{
		SiteName:    payload.SiteName,
		SiteLogoURL: payload.SiteLogoURL,
		HomeSlug:    payload.HomeSlug,
		Branding: theme.Branding{
			Primary:   payload.BrandPrimary,
			Secondary: payload.BrandSecondary,
			Accent:    payload.BrandAccent,
		},
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "保存失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, settingsResponse(settings))
}

func settingsResponse(settings service.SiteSettings) gin.H {
	return gin.H{
		"site_name":       settings.SiteName,
		"site_logo_url":   settings.SiteLogoURL,
		"home_slug":       settings.HomeSlug,
		"brand_primary":   settings.Branding.Primary,
		"brand_secondary": settings.Branding.Secondary,
		"brand_accent":    settings.Branding.Accent,
	}
}
