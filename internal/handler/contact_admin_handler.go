package handler

import (
	"errors"
	"net/http"

	"github.com/devmart/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowFormsInbox 渲染联系表单收件箱
func (a *API) ShowFormsInbox(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "forms.html", gin.H{
		"title": "表单收件箱",
	})
}

// GetSubmissions 返回联系表单提交列表
func (a *API) GetSubmissions(c *gin.Context) {
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)
	perPage := parsePositiveInt(c.DefaultQuery("per_page", "20"), 20)
	unreadOnly := c.Query("unread") == "1"

	result, err := a.contacts.List(page, perPage, unreadOnly)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取提交记录失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": result.Submissions,
		"total":       result.Total,
		"totalPages":  result.TotalPages,
		"page":        result.Page,
		"unreadCount": result.UnreadCount,
	})
}

// MarkSubmissionRead 标记提交为已读/未读
func (a *API) MarkSubmissionRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "记录 ID 无效")
		return
	}

	var payload struct {
		IsRead *bool `json:"is_read"`
	}
	if !bindJSON(c, &payload, "数据格式不正确") {
		return
	}
	read := true
	if payload.IsRead != nil {
		read = *payload.IsRead
	}

	if err := a.contacts.MarkRead(id, read); err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			respondError(c, http.StatusNotFound, "记录不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "操作失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "已更新"})
}
