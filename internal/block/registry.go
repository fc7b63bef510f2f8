package block

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/sync/singleflight"
)

// ErrBlockNotFound 表示区块类型未注册或模板加载失败。
// 渲染端捕获该错误后跳过对应区块，不中断整页渲染。
var ErrBlockNotFound = errors.New("block type not found")

// WrappingRule declares how the renderer wraps a block's markup.
// It replaces per-type special cases in the render path: full-bleed blocks
// own their horizontal chrome, so the container wrapper is never applied.
type WrappingRule string

const (
	WrapDefault   WrappingRule = "default"
	WrapFullBleed WrappingRule = "full-bleed"
)

// Definition describes a registered block type. Entries are immutable at
// runtime; adding a block type is a code-level change.
type Definition struct {
	Type         string
	Name         string
	Category     string
	Description  string
	TemplateFile string
	Wrapping     WrappingRule
	DefaultProps map[string]interface{}
}

// Block 是解析完成、可直接执行的区块模板。
type Block struct {
	Type     string
	Wrapping WrappingRule
	tmpl     *template.Template
}

// Render executes the block template with the stored props document.
func (b *Block) Render(props map[string]interface{}) (template.HTML, error) {
	if props == nil {
		props = map[string]interface{}{}
	}
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, props); err != nil {
		return "", fmt.Errorf("render block %s: %w", b.Type, err)
	}
	return template.HTML(buf.String()), nil
}

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(ghtml.WithHardWraps(), ghtml.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// templateFuncs 提供给区块模板的帮助函数。
// 普通字符串经 html/template 自动转义；携带 HTML 的属性必须经 safe 过滤。
var templateFuncs = template.FuncMap{
	"safe": func(raw string) template.HTML {
		return template.HTML(sanitizer.Sanitize(raw))
	},
	"markdown": func(raw string) template.HTML {
		var buf bytes.Buffer
		if err := markdownEngine.Convert([]byte(raw), &buf); err != nil {
			return template.HTML(template.HTMLEscapeString(raw))
		}
		return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
	},
}

// Registry resolves block types to executable templates. Templates parse
// lazily on first use and are cached; concurrent first resolves for the same
// type collapse into a single parse.
type Registry struct {
	dir  string
	defs map[string]Definition

	mu    sync.RWMutex
	cache map[string]*Block
	group singleflight.Group
}

// NewRegistry builds a registry over the built-in catalog with templates
// rooted at templateDir.
func NewRegistry(templateDir string) *Registry {
	return NewRegistryWithDefinitions(templateDir, Catalog())
}

// NewRegistryWithDefinitions 主要服务于测试，允许注入自定义目录表。
func NewRegistryWithDefinitions(templateDir string, defs []Definition) *Registry {
	lookup := make(map[string]Definition, len(defs))
	for _, def := range defs {
		lookup[def.Type] = def
	}
	return &Registry{
		dir:   templateDir,
		defs:  lookup,
		cache: make(map[string]*Block, len(defs)),
	}
}

// Resolve returns the cached block for blockType, loading it on first use.
// Unknown types and parse failures both surface as ErrBlockNotFound so a
// single bad section can never abort the rest of a page.
func (r *Registry) Resolve(blockType string) (*Block, error) {
	r.mu.RLock()
	cached, ok := r.cache[blockType]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := r.group.Do(blockType, func() (interface{}, error) {
		r.mu.RLock()
		cached, ok := r.cache[blockType]
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}

		loaded, err := r.load(blockType)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[blockType] = loaded
		r.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Block), nil
}

func (r *Registry) load(blockType string) (*Block, error) {
	def, ok := r.defs[blockType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, blockType)
	}

	path := filepath.Join(r.dir, def.TemplateFile)
	tmpl, err := template.New(def.TemplateFile).Funcs(templateFuncs).ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBlockNotFound, blockType, err)
	}

	return &Block{
		Type:     def.Type,
		Wrapping: def.Wrapping,
		tmpl:     tmpl,
	}, nil
}

// Has reports whether blockType is registered.
func (r *Registry) Has(blockType string) bool {
	_, ok := r.defs[blockType]
	return ok
}

// DefaultProps returns a deep copy of the default props document used when
// a section of this type is first inserted.
func (r *Registry) DefaultProps(blockType string) (map[string]interface{}, bool) {
	def, ok := r.defs[blockType]
	if !ok {
		return nil, false
	}
	if def.DefaultProps == nil {
		return map[string]interface{}{}, true
	}
	return deepCopyMap(def.DefaultProps), true
}

// Wrapping returns the wrapping rule for blockType, falling back to the
// generic rule for unknown types.
func (r *Registry) Wrapping(blockType string) WrappingRule {
	if def, ok := r.defs[blockType]; ok && def.Wrapping != "" {
		return def.Wrapping
	}
	return WrapDefault
}

// Definitions 返回目录的浅拷贝，供后台的区块选择器展示。
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.defs))
	for _, def := range catalog {
		if _, ok := r.defs[def.Type]; ok {
			out = append(out, def)
		}
	}
	return out
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for key, value := range src {
		dst[key] = deepCopyValue(value)
	}
	return dst
}

func deepCopyValue(value interface{}) interface{} {
	switch typed := value.(type) {
	case map[string]interface{}:
		return deepCopyMap(typed)
	case []interface{}:
		copied := make([]interface{}, len(typed))
		for i, item := range typed {
			copied[i] = deepCopyValue(item)
		}
		return copied
	default:
		return value
	}
}
