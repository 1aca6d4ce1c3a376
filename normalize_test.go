package latexify

import (
	"strings"
	"testing"
)

// TestNormalize_Defaults 默认配置下的端到端行为
func TestNormalize_Defaults(t *testing.T) {
	res := Normalize("Compute [CH3]+ from 12,500 units of x^{2+}")
	if !strings.Contains(res.Text, "[CH3]+") {
		t.Errorf("Normalize() = %q, should preserve [CH3]+", res.Text)
	}
	if !strings.Contains(res.Text, "12500") {
		t.Errorf("Normalize() = %q, should strip thousand separator", res.Text)
	}
	if !strings.Contains(res.Text, "^{2+}") {
		t.Errorf("Normalize() = %q, should preserve script", res.Text)
	}
	if !res.HasLatex {
		t.Error("HasLatex should be true")
	}
}

// TestNormalize_WithRenderLatexOff 选项关闭转义
func TestNormalize_WithRenderLatexOff(t *testing.T) {
	res := Normalize("45% done", WithRenderLatex(false))
	if res.Text != "45% done" {
		t.Errorf("Normalize() = %q, want unchanged", res.Text)
	}
}

// TestNormalize_OptionsDoNotMutateDefaults 选项不污染默认配置单例
func TestNormalize_OptionsDoNotMutateDefaults(t *testing.T) {
	_ = Normalize("x", WithRenderLatex(false), WithTutoring(true), WithVerbosity(true))
	cfg := DefaultConfig()
	if !cfg.RenderLatex || cfg.Tutoring || cfg.Verbosity {
		t.Errorf("DefaultConfig() mutated by options: %+v", cfg)
	}
}

// TestNormalize_WithConfigCopies WithConfig 之后的选项不回写调用方的配置
func TestNormalize_WithConfigCopies(t *testing.T) {
	caller := &TransformConfig{RenderLatex: true}
	_ = Normalize("45% done", WithConfig(caller), WithRenderLatex(false), WithTutoring(true))
	if !caller.RenderLatex || caller.Tutoring {
		t.Errorf("caller config mutated through WithConfig: %+v", caller)
	}
}

// TestNormalize_Idempotence 公开 API 层的幂等性
func TestNormalize_Idempotence(t *testing.T) {
	inputs := []string{
		"Compute [CH3]+ concentration",
		"The answer is 12,500 units & 45% of #1",
		"Point at [3, -2] with x^{2+} and _{aq}",
	}
	for _, input := range inputs {
		first := Normalize(input)
		second := Normalize(first.Text)
		if second.Text != first.Text {
			t.Errorf("not idempotent:\n input: %q\n first: %q\nsecond: %q", input, first.Text, second.Text)
		}
	}
}

// TestNormalize_EmptyPassThrough 空值原样通过
func TestNormalize_EmptyPassThrough(t *testing.T) {
	res := Normalize("")
	if res.Text != "" || res.HasLatex {
		t.Errorf("Normalize(\"\") = %+v, want empty result", res)
	}
}
