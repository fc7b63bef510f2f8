package handler

import (
	"errors"
	"net/http"

	"github.com/devmart/internal/db"
	"github.com/devmart/internal/service"
	"github.com/gin-gonic/gin"
)

type pagePayload struct {
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
	SEOImage        string `json:"seo_image"`
	Layout          string `json:"layout"`
}

type pageStatusPayload struct {
	Status string `json:"status"`
}

// ShowPageList 渲染后台页面列表
func (a *API) ShowPageList(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "pages.html", gin.H{
		"title":   "页面管理",
		"layouts": db.PageLayouts,
	})
}

// ShowPageEdit 渲染页面编辑器（基础信息 + 内容搭建两个标签页）
func (a *API) ShowPageEdit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderNotFound(c)
		return
	}

	page, err := a.pages.GetByID(id)
	if err != nil {
		a.renderNotFound(c)
		return
	}

	a.renderHTML(c, http.StatusOK, "page_edit.html", gin.H{
		"title":   "编辑页面",
		"page":    page,
		"status":  string(page.Status),
		"layouts": db.PageLayouts,
		"blocks":  a.registry.Definitions(),
	})
}

// GetPages 返回页面列表数据
func (a *API) GetPages(c *gin.Context) {
	filter := service.PageFilter{
		Search:  c.Query("search"),
		Status:  db.PageStatus(c.Query("status")),
		Page:    parsePositiveInt(c.DefaultQuery("page", "1"), 1),
		PerPage: parsePositiveInt(c.DefaultQuery("per_page", "20"), 20),
	}

	result, err := a.pages.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取页面列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pages":          result.Pages,
		"total":          result.Total,
		"totalPages":     result.TotalPages,
		"page":           result.Page,
		"publishedCount": result.PublishedCount,
		"draftCount":     result.DraftCount,
		"archivedCount":  result.ArchivedCount,
	})
}

// GetPage 返回单个页面
func (a *API) GetPage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "页面 ID 无效")
		return
	}

	page, err := a.pages.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "页面不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "获取页面失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// CreatePage 新建草稿页面
func (a *API) CreatePage(c *gin.Context) {
	var payload pagePayload
	if !bindJSON(c, &payload, "页面数据格式不正确") {
		return
	}

	page, err := a.pages.Create(service.PageInput{
		Slug:            payload.Slug,
		Title:           payload.Title,
		MetaDescription: payload.MetaDescription,
		MetaKeywords:    payload.MetaKeywords,
		SEOImage:        payload.SEOImage,
		Layout:          payload.Layout,
		CreatedBy:       currentUser(c).ID,
	})
	if err != nil {
		respondPageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// UpdatePage 更新页面基础信息
func (a *API) UpdatePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "页面 ID 无效")
		return
	}

	var payload pagePayload
	if !bindJSON(c, &payload, "页面数据格式不正确") {
		return
	}

	page, err := a.pages.Update(id, service.PageInput{
		Slug:            payload.Slug,
		Title:           payload.Title,
		MetaDescription: payload.MetaDescription,
		MetaKeywords:    payload.MetaKeywords,
		SEOImage:        payload.SEOImage,
		Layout:          payload.Layout,
	})
	if err != nil {
		respondPageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// UpdatePageStatus 推进页面生命周期状态
func (a *API) UpdatePageStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "页面 ID 无效")
		return
	}

	var payload pageStatusPayload
	if !bindJSON(c, &payload, "状态数据格式不正确") {
		return
	}

	page, err := a.pages.SetStatus(id, db.PageStatus(payload.Status))
	if err != nil {
		respondPageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DeletePage 物理删除页面及其全部区块，仅管理员可用
func (a *API) DeletePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "页面 ID 无效")
		return
	}

	user := currentUser(c)
	actor := service.Viewer{Authenticated: user.ID != 0, Role: user.Role}
	if err := a.pages.Delete(id, actor); err != nil {
		respondPageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "页面已删除"})
}

func respondPageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPageNotFound):
		respondError(c, http.StatusNotFound, "页面不存在")
	case errors.Is(err, service.ErrPageTitleMissing):
		respondError(c, http.StatusBadRequest, "请填写页面标题")
	case errors.Is(err, service.ErrSlugInvalid):
		respondError(c, http.StatusBadRequest, "slug 只能包含小写字母、数字和连字符")
	case errors.Is(err, service.ErrSlugTaken):
		respondError(c, http.StatusBadRequest, "slug 已被其他页面占用")
	case errors.Is(err, service.ErrPageArchived):
		respondError(c, http.StatusBadRequest, "已归档的页面不可编辑")
	case errors.Is(err, service.ErrStatusTransition), errors.Is(err, service.ErrStatusUnknown):
		respondError(c, http.StatusBadRequest, "页面状态流转不合法")
	case errors.Is(err, service.ErrLayoutUnknown):
		respondError(c, http.StatusBadRequest, "未知的页面布局")
	case errors.Is(err, service.ErrDeleteNotAllowed):
		respondError(c, http.StatusForbidden, "仅管理员可以删除页面")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败，请稍后重试")
	}
}
