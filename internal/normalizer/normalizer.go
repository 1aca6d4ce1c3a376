// Package normalizer 教学内容文本字段的规则归一化核心
//
// 设计原则：
// 1. 纯函数 — 无 I/O、无共享状态，任意输入都不会失败
// 2. 鲁棒降级 — 无法识别的区域保持原样，不做猜测
// 3. 区间表驱动 — 保护区间在单次扫描中确定，后续 pass 只改写区间之外的文本
// 4. 幂等 — 对自身输出再次归一化是 no-op
package normalizer

import (
	"regexp"
	"strings"

	"github.com/riverfjs/latexify-go/internal/types"
)

// Logger 诊断跟踪接口，形状与 charmbracelet/log 兼容
type Logger interface {
	Debug(msg any, keyvals ...any)
}

var logger Logger

// SetLogger 设置 Verbosity 跟踪使用的日志记录器
func SetLogger(l Logger) {
	logger = l
}

var (
	// 严格的千位分隔形状：1-3 位首组，后续每组恰好 3 位
	thousandSepRe = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+$`)

	// 上下标标记：^{...} / _{...}；字符类允许嵌套的 {，
	// 使 ^{\frac{1}{2}} 这类区间也能命中；空组 ^{} 不算标记
	scriptMarkerRe = regexp.MustCompile(`[\^_]\{[^}]+\}`)
)

// Normalize 对单个文本字段做归一化，返回归一化文本及 LaTeX 标志
//
// 有序 pass：
// 1. 区间扫描 — 标记化学式、坐标元组、已有 LaTeX 上下标（见 span.go）
// 2. 数字归一化 — 区间之外严格形状的千位分隔逗号被剥除
// 3. LaTeX 转义 — 仅 RenderLatex 时，区间之外的保留字符加转义标记
// 4. 组装 — 区间与改写后的文本按原顺序拼接，扫描输出得到 HasLatex
//
// 对任意输入都成功；最坏情况原样返回且 HasLatex=false。
func Normalize(text string, cfg *types.Config) types.Result {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	if text == "" {
		return types.Result{}
	}

	spans := scanSpans(text)
	if cfg.Verbosity && logger != nil {
		for _, sp := range spans {
			logger.Debug("protected span",
				"kind", sp.Kind.String(),
				"start", sp.Start,
				"end", sp.End,
				"text", text[sp.Start:sp.End])
		}
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	last := 0
	for _, sp := range spans {
		b.WriteString(rewriteGap(text[last:sp.Start], cfg))
		b.WriteString(text[sp.Start:sp.End])
		last = sp.End
	}
	b.WriteString(rewriteGap(text[last:], cfg))

	out := b.String()
	return types.Result{
		Text:     out,
		HasLatex: scriptMarkerRe.MatchString(out),
	}
}

// rewriteGap 改写两个保护区间之间的文本
func rewriteGap(seg string, cfg *types.Config) string {
	if seg == "" {
		return seg
	}
	out := stripThousandSeparators(seg)
	if cfg.RenderLatex {
		out = escapeReserved(out)
	}
	if cfg.Verbosity && logger != nil && out != seg {
		logger.Debug("rewrite", "before", seg, "after", out)
	}
	return out
}

// ──────────────────────────────────────────────
// Pass 2: 数字归一化
// ──────────────────────────────────────────────

// stripThousandSeparators 剥除严格千位分隔形状中的逗号
//
// 数字串按最大化取：数字，以及两侧都是数字的逗号。整串匹配
// 1,234 / 12,500 / 1,234,567 这类形状才剥除；1,23,456 等
// 歧义分组保持原样，不做猜测。
func stripThousandSeparators(seg string) string {
	var b strings.Builder
	i := 0
	for i < len(seg) {
		if !isDigit(seg[i]) {
			b.WriteByte(seg[i])
			i++
			continue
		}
		j := i
		for j < len(seg) {
			if isDigit(seg[j]) {
				j++
				continue
			}
			if seg[j] == ',' && j+1 < len(seg) && isDigit(seg[j+1]) {
				j++
				continue
			}
			break
		}
		run := seg[i:j]
		if thousandSepRe.MatchString(run) {
			b.WriteString(strings.ReplaceAll(run, ",", ""))
		} else {
			b.WriteString(run)
		}
		i = j
	}
	return b.String()
}

// ──────────────────────────────────────────────
// Pass 3: LaTeX 转义
// ──────────────────────────────────────────────

// escapeReserved 对数学模式保留字符加 \ 前缀
//
// 走到这里的 ^/_ 必然是孤立的（带配对花括号的在 pass 1 已成为
// 保护区间）。已有 \ 前缀的字符不再二次转义，保证幂等。
func escapeReserved(seg string) string {
	if !strings.ContainsAny(seg, "%&#^_") {
		return seg
	}
	var b strings.Builder
	b.Grow(len(seg) + 4)
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch c {
		case '%', '&', '#', '^', '_':
			if i == 0 || seg[i-1] != '\\' {
				b.WriteByte('\\')
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
