package handler

import (
	"errors"
	"net/http"

	"github.com/devmart/internal/db"
	"github.com/devmart/internal/editor"
	"github.com/devmart/internal/service"
	"github.com/gin-gonic/gin"
)

type addSectionPayload struct {
	BlockType string `json:"block_type"`
}

type reorderPayload struct {
	IDs []uint `json:"ids"`
}

type toggleActivePayload struct {
	IsActive *bool `json:"is_active"`
}

// updateSectionPayload 支持可视化与原始两种编辑模式：
// 可视化模式提交 block_props，原始模式提交整份 raw_props 文本。
type updateSectionPayload struct {
	BlockProps          db.PropsMap `json:"block_props"`
	RawProps            *string     `json:"raw_props"`
	HasContainer        bool        `json:"has_container"`
	SpacingAfterLg      int         `json:"spacing_after_lg"`
	SpacingAfterMd      int         `json:"spacing_after_md"`
	SectionWrapperClass string      `json:"section_wrapper_class"`
}

// GetBlockCatalog 返回区块目录，供选择器分组展示。
func (a *API) GetBlockCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"blocks": a.registry.Definitions()})
}

// GetSections 返回页面的全部区块（含隐藏项），按渲染顺序排列。
func (a *API) GetSections(c *gin.Context) {
	pageID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "页面 ID 无效")
		return
	}

	sections, err := a.sections.ListForPage(c.Request.Context(), pageID, false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取区块列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// CreateSection 在页面末尾插入新区块
func (a *API) CreateSection(c *gin.Context) {
	pageID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "页面 ID 无效")
		return
	}

	if _, err := a.pages.GetByID(pageID); err != nil {
		respondError(c, http.StatusNotFound, "页面不存在")
		return
	}

	var payload addSectionPayload
	if !bindJSON(c, &payload, "区块数据格式不正确") {
		return
	}

	section, err := a.sections.AddSection(pageID, payload.BlockType)
	if err != nil {
		if errors.Is(err, service.ErrBlockTypeUnknown) {
			respondError(c, http.StatusBadRequest, "未注册的区块类型")
			return
		}
		respondError(c, http.StatusInternalServerError, "添加区块失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"section": section})
}

// ReorderSections 按提交的完整顺序重写 order_index。
// 失败时返回当前权威顺序，前端据此回滚乐观排序。
func (a *API) ReorderSections(c *gin.Context) {
	pageID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "页面 ID 无效")
		return
	}

	var payload reorderPayload
	if !bindJSON(c, &payload, "排序数据格式不正确") {
		return
	}

	if err := a.sections.Reorder(c.Request.Context(), pageID, payload.IDs); err != nil {
		authoritative, fetchErr := a.sections.ListForPage(c.Request.Context(), pageID, false)
		if fetchErr != nil {
			respondError(c, http.StatusInternalServerError, "排序失败")
			return
		}

		status := http.StatusInternalServerError
		message := "排序失败，已恢复原有顺序"
		if errors.Is(err, service.ErrReorderMismatch) {
			status = http.StatusBadRequest
			message = "排序列表与页面区块不一致"
		}
		c.JSON(status, gin.H{"error": message, "sections": authoritative})
		return
	}

	sections, err := a.sections.ListForPage(c.Request.Context(), pageID, false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取区块列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// ToggleSectionActive 切换区块显示状态
func (a *API) ToggleSectionActive(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "区块 ID 无效")
		return
	}

	var payload toggleActivePayload
	if !bindJSON(c, &payload, "状态数据格式不正确") {
		return
	}
	if payload.IsActive == nil {
		respondError(c, http.StatusBadRequest, "缺少 is_active 字段")
		return
	}

	section, err := a.sections.ToggleActive(sectionID, *payload.IsActive)
	if err != nil {
		respondSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": section})
}

// UpdateSection 保存区块属性与布局参数
func (a *API) UpdateSection(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "区块 ID 无效")
		return
	}

	var payload updateSectionPayload
	if !bindJSON(c, &payload, "区块数据格式不正确") {
		return
	}

	props := payload.BlockProps
	if payload.RawProps != nil {
		parsed, err := editor.ParseRawProps(*payload.RawProps)
		if err != nil {
			respondError(c, http.StatusBadRequest, "属性文档不是合法的 JSON 对象")
			return
		}
		props = parsed
	}

	section, err := a.sections.UpdateProps(sectionID, props, service.SectionLayoutInput{
		HasContainer:        payload.HasContainer,
		SpacingAfterLg:      payload.SpacingAfterLg,
		SpacingAfterMd:      payload.SpacingAfterMd,
		SectionWrapperClass: payload.SectionWrapperClass,
	})
	if err != nil {
		respondSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"section": section})
}

// GetSectionFields 返回可视化编辑器的控件推断结果
func (a *API) GetSectionFields(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "区块 ID 无效")
		return
	}

	section, err := a.sections.GetByID(sectionID)
	if err != nil {
		respondSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fields": editor.FieldsFor(section.BlockProps),
		"layout": gin.H{
			"has_container":         section.HasContainer,
			"spacing_after_lg":      section.SpacingAfterLg,
			"spacing_after_md":      section.SpacingAfterMd,
			"section_wrapper_class": section.SectionWrapperClass,
		},
	})
}

// DeleteSection 删除区块
func (a *API) DeleteSection(c *gin.Context) {
	sectionID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "区块 ID 无效")
		return
	}

	if err := a.sections.DeleteSection(sectionID); err != nil {
		respondSectionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "区块已删除"})
}

func respondSectionError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrSectionNotFound) {
		respondError(c, http.StatusNotFound, "区块不存在")
		return
	}
	respondError(c, http.StatusInternalServerError, "操作失败，请稍后重试")
}
