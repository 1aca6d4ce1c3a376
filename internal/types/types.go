package types

// Config 文本归一化配置
type Config struct {
	// Tutoring 保留选项（上游流水线的行为变体），无归一化效果
	Tutoring bool
	// StepMC 保留选项，无归一化效果
	StepMC bool
	// RenderLatex 为 true 时对保护区间之外的保留字符做 LaTeX 转义
	RenderLatex bool
	// Verbosity 开启诊断跟踪，不影响输出
	Verbosity bool
}

// DefaultConfig 返回默认归一化配置
func DefaultConfig() *Config {
	return &Config{
		RenderLatex: true,
	}
}

// Result 单个文本字段的归一化结果
type Result struct {
	// Text 归一化后的文本
	Text string
	// HasLatex 输出中是否含有 LaTeX 上下标标记（^{...} / _{...}）
	HasLatex bool
}
