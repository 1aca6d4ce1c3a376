package latexify

import (
	"strings"

	"github.com/riverfjs/latexify-go/internal/normalizer"
	"github.com/riverfjs/latexify-go/internal/sheet"
	"github.com/riverfjs/latexify-go/internal/validate"
)

// ProcessTable 对已解码的表格运行完整流水线
//
// 步骤：
// 1. 结构校验（表头、行结构、Markdown 残留）
// 2. 逐行遍历，对每个存在的文本字段（Body Text / Answer / Title）
//    调用归一化核心
// 3. 汇总行类型计数与字段级统计
//
// 缺失或 NaN 等价（空串、字面 "nan"）的字段原样跳过，既不转换
// 也不计入统计。归一化本身无错误通道，所以 ProcessTable 总是成功。
func ProcessTable(table *sheet.Table, opts ...Option) *SheetReport {
	if table == nil {
		// nil 表按零行处理，保持"总是成功"的契约
		return &SheetReport{
			Validation: &validate.Report{},
			Summary:    Summary{RowCounts: make(map[string]int)},
		}
	}
	options := applyOptions(opts...)

	report := &SheetReport{
		Table:      table,
		Validation: validate.Sheet(table),
		Summary: Summary{
			Rows:      len(table.Rows),
			RowCounts: make(map[string]int),
		},
	}

	for idx, row := range table.Rows {
		rowType := strings.TrimSpace(row[sheet.ColRowType])
		if rowType != "" {
			report.Summary.RowCounts[rowType]++
		}

		rowResult := RowResult{
			Index:       idx,
			RowType:     rowType,
			ProblemName: strings.TrimSpace(row[sheet.ColProblemName]),
		}

		for _, col := range sheet.TextColumns {
			raw, ok := row[col]
			if !ok || isAbsent(raw) {
				continue
			}

			res := normalizer.Normalize(raw, options.Config)
			field := FieldResult{
				Column:   col,
				Original: raw,
				Text:     res.Text,
				HasLatex: res.HasLatex,
				Changed:  res.Text != raw,
			}
			rowResult.Fields = append(rowResult.Fields, field)

			report.Summary.FieldsProcessed++
			if field.Changed {
				report.Summary.FieldsChanged++
			}
			if field.HasLatex {
				report.Summary.LatexFields++
			}
		}

		report.Rows = append(report.Rows, rowResult)
	}

	return report
}

// isAbsent 判断单元格是否为缺失值
//
// CSV 导出把空单元格写成空串；从 pandas 流程导出的表格偶尔会把
// 缺失值序列化成字面 "nan"，同样按缺失处理。
func isAbsent(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || strings.EqualFold(trimmed, "nan")
}
