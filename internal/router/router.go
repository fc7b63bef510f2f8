package router

import (
	"html/template"

	"github.com/devmart/internal/config"
	"github.com/devmart/internal/db"
	"github.com/devmart/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("devmart_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"eq": func(a, b interface{}) bool {
			return a == b
		},
	})
	r.LoadHTMLGlob("web/template/pages/*.html")

	// 静态文件服务
	r.Static("/static", "./web/static")

	api := handler.NewAPI(db.DB, handler.Options{
		BlockTemplateDir: cfg.BlockTemplateDir,
		SiteBaseURL:      cfg.SiteBaseURL,
		RenderTimeout:    cfg.RenderTimeout,
	})

	// 公开路由
	r.GET("/", api.ShowHome)
	r.POST("/api/contact", api.CreateContactSubmission)

	// 未匹配到的 GET 路径按页面 slug 兜底解析
	r.NoRoute(api.ServePage)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(api.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/pages", api.ShowPageList)
			auth.GET("/pages/:id/edit", api.ShowPageEdit)
			auth.GET("/settings", api.ShowSettings)
			auth.GET("/navigation", api.ShowNavigation)
			auth.GET("/forms", api.ShowFormsInbox)

			// API 路由
			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/pages", api.GetPages)
				adminAPI.GET("/pages/:id", api.GetPage)
				adminAPI.GET("/pages/:id/sections", api.GetSections)
				adminAPI.GET("/sections/:id/fields", api.GetSectionFields)
				adminAPI.GET("/blocks", api.GetBlockCatalog)
				adminAPI.GET("/settings", api.GetSettings)
				adminAPI.GET("/navigation", api.GetNavigation)
				adminAPI.GET("/forms", api.GetSubmissions)

				// 内容写操作需要 editor 及以上权限
				edit := adminAPI.Group("")
				edit.Use(api.EditorRequired())
				{
					edit.POST("/pages", api.CreatePage)
					edit.PUT("/pages/:id", api.UpdatePage)
					edit.PUT("/pages/:id/status", api.UpdatePageStatus)
					edit.POST("/pages/:id/sections", api.CreateSection)
					edit.PUT("/pages/:id/sections/reorder", api.ReorderSections)
					edit.PUT("/sections/:id", api.UpdateSection)
					edit.PUT("/sections/:id/active", api.ToggleSectionActive)
					edit.DELETE("/sections/:id", api.DeleteSection)
					edit.PUT("/navigation/reorder", api.ReorderNavigation)
					edit.POST("/navigation", api.CreateNavigationItem)
					edit.PUT("/navigation/:id", api.UpdateNavigationItem)
					edit.DELETE("/navigation/:id", api.DeleteNavigationItem)
					edit.PUT("/forms/:id/read", api.MarkSubmissionRead)
				}

				// 管理员专属操作
				root := adminAPI.Group("")
				root.Use(api.AdminRequired())
				{
					root.DELETE("/pages/:id", api.DeletePage)
					root.PUT("/settings", api.UpdateSettings)
				}
			}
		}
	}

	return r
}
