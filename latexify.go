// Package latexify 将教学内容表格中的自由文本字段安全地归一化为
// LaTeX 兼容标记
//
// 这个包服务于辅导界面的内容生成流程：表格行（题干、答案、标题）中
// 既有需要逐字保留的领域记号（化学式、坐标元组、已有的 LaTeX 上下标），
// 也有需要归一化的通用数字/排版噪声（千位分隔逗号、散落的保留字符）。
//
// 核心功能：
//   - 单字段归一化：保护区间检测、千位分隔剥除、LaTeX 安全转义
//   - 公开表格的 CSV 导出抓取与解码
//   - 表头与行结构校验
//   - 逐行处理与汇总报告
//
// 主要 API：
//   - Normalize(): 同步归一化单个文本字段，返回 Result
//   - Latexify(): 异步完整处理，抓取表格并归一化所有文本字段
//   - ProcessTable(): 对已解码的表格运行同样的流水线
//
// 示例：
//
//	// 单字段归一化
//	res := latexify.Normalize("The answer is 12,500 units")
//
//	// 完整处理
//	report, err := latexify.Latexify(ctx, sheetKey, gid)
//	for _, row := range report.Rows {
//	    for _, f := range row.Fields {
//	        // 持久化或渲染 f.Text
//	    }
//	}
package latexify

import (
	"context"

	"github.com/riverfjs/latexify-go/internal/sheet"
)

// Latexify 抓取一张公开表格并归一化其全部文本字段
//
// 这是主要的异步 API，用于完整的表格处理，包括 CSV 抓取、结构校验
// 和逐字段归一化。对于较低级别的单字段归一化，使用 Normalize()。
//
// 参数：
//   - ctx: 上下文
//   - sheetKey: Google Sheets 的表格 key
//   - gid: 标签页 gid，空串表示第一个标签页
//   - opts: 处理选项，缺省时使用默认配置
//
// 返回：
//   - *SheetReport: 校验结果、逐行归一化结果与汇总
//   - error: 抓取或解码失败时的错误信息
func Latexify(ctx context.Context, sheetKey, gid string, opts ...Option) (*SheetReport, error) {
	options := applyOptions(opts...)

	table, err := sheet.Fetch(ctx, options.HTTPClient, sheetKey, gid)
	if err != nil {
		return nil, err
	}
	Logger.Info("sheet loaded", "rows", len(table.Rows), "columns", len(table.Headers))

	return ProcessTable(table, opts...), nil
}
