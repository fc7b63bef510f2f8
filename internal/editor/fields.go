// Package editor backs the visual props editor in the page builder.
// The registry publishes no per-type schema, so widgets are inferred from the
// runtime type of each value; edited values must keep their original type.
package editor

import (
	"encoding/json"
	"errors"
	"sort"
	"unicode/utf8"
)

// WidgetKind 标识可视化编辑器为某个属性渲染的控件类型。
type WidgetKind string

const (
	WidgetText     WidgetKind = "text"
	WidgetTextarea WidgetKind = "textarea"
	WidgetNumber   WidgetKind = "number"
	WidgetToggle   WidgetKind = "toggle"
	WidgetJSON     WidgetKind = "json"
)

// 超过该长度的字符串采用多行输入框。
const textareaThreshold = 80

// ErrPropsInvalid 表示原始模式提交的属性文档不是合法的 JSON 对象。
var ErrPropsInvalid = errors.New("props document must be a JSON object")

// Field describes one editable prop for the visual editor.
type Field struct {
	Key   string      `json:"key"`
	Kind  WidgetKind  `json:"kind"`
	Value interface{} `json:"value"`
}

// FieldsFor infers a widget per prop from its runtime type. Keys come back
// sorted so the editor layout is deterministic.
func FieldsFor(props map[string]interface{}) []Field {
	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, Field{
			Key:   key,
			Kind:  inferKind(props[key]),
			Value: props[key],
		})
	}
	return fields
}

func inferKind(value interface{}) WidgetKind {
	switch typed := value.(type) {
	case string:
		if utf8.RuneCountInString(typed) > textareaThreshold {
			return WidgetTextarea
		}
		return WidgetText
	case bool:
		return WidgetToggle
	case float64, int, int64, json.Number:
		return WidgetNumber
	default:
		// 数组、对象以及 null 走结构化编辑器
		return WidgetJSON
	}
}

// ParseRawProps validates a raw-mode submission. Invalid JSON or a non-object
// root blocks saving; the parsed document is returned untouched otherwise.
func ParseRawProps(raw string) (map[string]interface{}, error) {
	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, ErrPropsInvalid
	}

	props, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, ErrPropsInvalid
	}
	return props, nil
}
