// Package theme maps branding configuration to CSS custom-property tokens.
// The mapping is a pure function; nothing here mutates global style state.
package theme

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"
)

// Branding 保存后台设置的品牌色（十六进制）。
type Branding struct {
	Primary   string
	Secondary string
	Accent    string
}

// Tokens converts the configured hex colors to the CSS custom properties the
// layouts consume. Unset or malformed colors are simply omitted so the
// stylesheet defaults stay in effect.
func Tokens(b Branding) map[string]string {
	tokens := make(map[string]string, 3)
	if hsl, ok := hexToHSL(b.Primary); ok {
		tokens["--primary"] = hsl
	}
	if hsl, ok := hexToHSL(b.Secondary); ok {
		tokens["--secondary"] = hsl
	}
	if hsl, ok := hexToHSL(b.Accent); ok {
		tokens["--accent"] = hsl
	}
	return tokens
}

// InlineStyle renders a :root style block with the branding tokens, ready to
// embed in a layout's head. Returns an empty string when nothing is set.
func InlineStyle(b Branding) template.CSS {
	tokens := Tokens(b)
	if len(tokens) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(":root{")
	// 固定输出顺序，避免模板对比测试抖动
	for _, name := range []string{"--primary", "--secondary", "--accent"} {
		if value, ok := tokens[name]; ok {
			sb.WriteString(name)
			sb.WriteString(":")
			sb.WriteString(value)
			sb.WriteString(";")
		}
	}
	sb.WriteString("}")
	return template.CSS(sb.String())
}

// hexToHSL converts "#RRGGBB" to the space-separated HSL triplet CSS custom
// properties expect, e.g. "#1a73e8" -> "214 82% 51%".
func hexToHSL(hex string) (string, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return "", false
	}

	r, errR := strconv.ParseUint(hex[0:2], 16, 8)
	g, errG := strconv.ParseUint(hex[2:4], 16, 8)
	b, errB := strconv.ParseUint(hex[4:6], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return "", false
	}

	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	var h float64
	if delta != 0 {
		switch max {
		case rf:
			h = (gf - bf) / delta
			if gf < bf {
				h += 6
			}
		case gf:
			h = (bf-rf)/delta + 2
		default:
			h = (rf-gf)/delta + 4
		}
		h /= 6
	}

	l := (max + min) / 2
	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return fmt.Sprintf("%d %d%% %d%%",
		int(math.Round(h*360)),
		int(math.Round(s*100)),
		int(math.Round(l*100)),
	), true
}
