package handler

import (
	"net/http"

	"github.com/devmart/internal/db"
	"github.com/devmart/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const currentUserContextKey = "__current_user"

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": "管理员登录",
	})
}

// Login 处理用户登录请求
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	// 查找用户
	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{"error": "用户名或密码错误"})
		return
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "login.html", gin.H{"error": "用户名或密码错误"})
		return
	}

	// 设置会话
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "login.html", gin.H{"error": "会话保存失败"})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 处理用户登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	user := currentUser(c)

	var pageCount int64
	a.db.Model(&db.Page{}).Count(&pageCount)

	var sectionCount int64
	a.db.Model(&db.PageSection{}).Count(&sectionCount)

	var unreadCount int64
	a.db.Model(&db.ContactSubmission{}).Where("is_read = ?", false).Count(&unreadCount)

	a.renderHTML(c, http.StatusOK, "dashboard.html", gin.H{
		"title":        "管理面板",
		"username":     user.Username,
		"role":         user.Role,
		"pageCount":    pageCount,
		"sectionCount": sectionCount,
		"unreadCount":  unreadCount,
	})
}

// AuthRequired 认证中间件：加载会话用户并挂到请求上下文。
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		var user db.User
		if err := a.db.First(&user, userID).Error; err != nil {
			session.Clear()
			session.Save()
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set(currentUserContextKey, user)
		c.Next()
	}
}

// EditorRequired 要求 editor 及以上权限。
func (a *API) EditorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentUser(c).CanEdit() {
			respondError(c, http.StatusForbidden, "没有内容编辑权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired 要求 admin 及以上权限，用于删除页面等操作。
func (a *API) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentUser(c).IsAdmin() {
			respondError(c, http.StatusForbidden, "没有管理员权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) db.User {
	if cached, exists := c.Get(currentUserContextKey); exists {
		if user, ok := cached.(db.User); ok {
			return user
		}
	}
	return db.User{}
}

// viewerFrom 把会话用户折算成渲染可见性判断所需的访问者身份。
// 公共路由不经过 AuthRequired，因此这里按需读库。
func (a *API) viewerFrom(c *gin.Context) service.Viewer {
	if cached, exists := c.Get(currentUserContextKey); exists {
		if user, ok := cached.(db.User); ok {
			return service.Viewer{Authenticated: true, Role: user.Role}
		}
	}

	session := sessions.Default(c)
	userID := session.Get("user_id")
	if userID == nil {
		return service.Viewer{}
	}

	var user db.User
	if err := a.db.First(&user, userID).Error; err != nil {
		return service.Viewer{}
	}
	return service.Viewer{Authenticated: true, Role: user.Role}
}
