package handler

import (
	"strings"
	"time"

	"github.com/devmart/internal/block"
	"github.com/devmart/internal/render"
	"github.com/devmart/internal/service"
	"github.com/devmart/internal/theme"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	pages      *service.PageService
	sections   *service.SectionService
	navigation *service.NavigationService
	contacts   *service.ContactService
	settings   *service.SiteSettingService
	registry   *block.Registry
	renderer   *render.Renderer
}

// Options 控制 API 的外部参数。
type Options struct {
	BlockTemplateDir string
	SiteBaseURL      string
	RenderTimeout    time.Duration
}

const siteSettingsContextKey = "__site_settings"

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, opts Options) *API {
	registry := block.NewRegistry(opts.BlockTemplateDir)
	pages := service.NewPageService(gdb)
	sections := service.NewSectionService(gdb, registry)

	return &API{
		db:         gdb,
		pages:      pages,
		sections:   sections,
		navigation: service.NewNavigationService(gdb),
		contacts:   service.NewContactService(gdb),
		settings:   service.NewSiteSettingService(gdb),
		registry:   registry,
		renderer:   render.New(pages, sections, registry, opts.SiteBaseURL, opts.RenderTimeout),
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Registry exposes the block registry for seeding scripts.
func (a *API) Registry() *block.Registry {
	return a.registry
}

func (a *API) siteSettings(c *gin.Context) service.SiteSettings {
	if cached, exists := c.Get(siteSettingsContextKey); exists {
		if view, ok := cached.(service.SiteSettings); ok {
			return view
		}
	}

	settings, err := a.settings.GetSettings()
	if err != nil {
		c.Error(err)
	}
	if strings.TrimSpace(settings.SiteName) == "" {
		settings.SiteName = "Devmart"
	}

	c.Set(siteSettingsContextKey, settings)
	return settings
}

// renderHTML 在向模板渲染时自动附加站点名称、Logo 与品牌样式。
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	view := a.siteSettings(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{
			"name":    view.SiteName,
			"logoUrl": view.SiteLogoURL,
		}
	}
	if _, exists := payload["brandStyle"]; !exists {
		payload["brandStyle"] = theme.InlineStyle(view.Branding)
	}

	c.HTML(status, template, payload)
}
