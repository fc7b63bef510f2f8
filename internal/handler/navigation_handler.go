package handler

import (
	"errors"
	"net/http"

	"github.com/devmart/internal/db"
	"github.com/devmart/internal/service"
	"github.com/gin-gonic/gin"
)

type navigationPayload struct {
	Label     string `json:"label"`
	URL       string `json:"url"`
	Location  string `json:"location"`
	IsVisible *bool  `json:"is_visible"`
}

// ShowNavigation 渲染导航管理页面
func (a *API) ShowNavigation(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "navigation.html", gin.H{
		"title": "导航管理",
	})
}

// GetNavigation 返回指定位置的导航项
func (a *API) GetNavigation(c *gin.Context) {
	location := db.NavigationLocation(c.DefaultQuery("location", string(db.NavigationHeader)))

	items, err := a.navigation.List(location, false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取导航失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateNavigationItem 新建导航项
func (a *API) CreateNavigationItem(c *gin.Context) {
	var payload navigationPayload
	if !bindJSON(c, &payload, "导航数据格式不正确") {
		return
	}

	item, err := a.navigation.Create(service.NavigationInput{
		Label:    payload.Label,
		URL:      payload.URL,
		Location: db.NavigationLocation(payload.Location),
	})
	if err != nil {
		if errors.Is(err, service.ErrNavigationInvalid) {
			respondError(c, http.StatusBadRequest, "请填写名称和链接")
			return
		}
		respondError(c, http.StatusInternalServerError, "创建导航失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// UpdateNavigationItem 更新导航项
func (a *API) UpdateNavigationItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "导航 ID 无效")
		return
	}

	var payload navigationPayload
	if !bindJSON(c, &payload, "导航数据格式不正确") {
		return
	}

	visible := true
	if payload.IsVisible != nil {
		visible = *payload.IsVisible
	}

	item, err := a.navigation.Update(id, service.NavigationInput{
		Label: payload.Label,
		URL:   payload.URL,
	}, visible)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNavigationNotFound):
			respondError(c, http.StatusNotFound, "导航项不存在")
		case errors.Is(err, service.ErrNavigationInvalid):
			respondError(c, http.StatusBadRequest, "请填写名称和链接")
		default:
			respondError(c, http.StatusInternalServerError, "更新导航失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// ReorderNavigation 重排某一位置的导航项
func (a *API) ReorderNavigation(c *gin.Context) {
	var payload struct {
		Location string `json:"location"`
		IDs      []uint `json:"ids"`
	}
	if !bindJSON(c, &payload, "排序数据格式不正确") {
		return
	}

	location := db.NavigationLocation(payload.Location)
	if err := a.navigation.Reorder(location, payload.IDs); err != nil {
		respondError(c, http.StatusInternalServerError, "排序失败")
		return
	}

	items, err := a.navigation.List(location, false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取导航失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// DeleteNavigationItem 删除导航项
func (a *API) DeleteNavigationItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "导航 ID 无效")
		return
	}

	if err := a.navigation.Delete(id); err != nil {
		if errors.Is(err, service.ErrNavigationNotFound) {
			respondError(c, http.StatusNotFound, "导航项不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除导航失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "导航项已删除"})
}
