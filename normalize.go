package latexify

import (
	"github.com/riverfjs/latexify-go/internal/normalizer"
)

// Normalize 将单个文本字段归一化为 LaTeX 兼容标记
//
// 确定性的纯函数，对任意输入都成功；空输入原样通过且不设标志。
// 化学式（[CH3]+）、坐标元组（[3, -2]）和已有的 LaTeX 上下标
// （^{2+}、_{aq}）被逐字保留；千位分隔逗号被剥除（12,500 → 12500）；
// 开启 RenderLatex 时保护区间之外的保留字符被转义。
//
// 参数:
//   - text: 原始字段文本
//   - opts: 归一化选项，缺省时使用默认配置
//
// 返回:
//   - Result: 归一化文本与 HasLatex 标志
func Normalize(text string, opts ...Option) Result {
	options := applyOptions(opts...)
	return normalizer.Normalize(text, options.Config)
}
