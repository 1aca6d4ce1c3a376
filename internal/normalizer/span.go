package normalizer

// SpanKind 保护区间类别
type SpanKind int

const (
	// SpanLatexScript 已有的 LaTeX 上下标：^{...} / _{...}
	SpanLatexScript SpanKind = iota
	// SpanChemistry 化学式：[CH3]、[NH4]+ 等（含相邻电荷后缀）
	SpanChemistry
	// SpanCoordinate 坐标元组：[3, -2]、(x, y) 等
	SpanCoordinate
)

// String returns the span kind name used in trace output.
func (k SpanKind) String() string {
	switch k {
	case SpanLatexScript:
		return "existing-latex-script"
	case SpanChemistry:
		return "chemistry-formula"
	case SpanCoordinate:
		return "coordinate-tuple"
	default:
		return "unknown"
	}
}

// Span 一段不可被后续 pass 改写的子串区间，[Start, End) 为字节偏移
type Span struct {
	Start int
	End   int
	Kind  SpanKind
}

// ──────────────────────────────────────────────
// 区间扫描
// ──────────────────────────────────────────────

// scanSpans 单次从左到右扫描，构建互不重叠的保护区间表
//
// 同一位置多个模式竞争时按最左最早匹配取胜；化学式与坐标元组的
// 歧义消解规则：方括号内容为单个无逗号的元素符号形状 token 时
// 化学式胜出，含逗号一律按坐标语义处理（如 [Na, Cl]）。
// 已认领区间内部的括号字符不再参与扫描。
func scanSpans(s string) []Span {
	var spans []Span
	i := 0
	for i < len(s) {
		switch s[i] {
		case '^', '_':
			if end, ok := matchScript(s, i); ok {
				spans = append(spans, Span{Start: i, End: end, Kind: SpanLatexScript})
				i = end
				continue
			}
		case '[':
			if end, ok := matchChemistry(s, i); ok {
				spans = append(spans, Span{Start: i, End: end, Kind: SpanChemistry})
				i = end
				continue
			}
			if end, ok := matchTuple(s, i, ']'); ok {
				spans = append(spans, Span{Start: i, End: end, Kind: SpanCoordinate})
				i = end
				continue
			}
		case '(':
			if end, ok := matchTuple(s, i, ')'); ok {
				spans = append(spans, Span{Start: i, End: end, Kind: SpanCoordinate})
				i = end
				continue
			}
		}
		i++
	}
	return spans
}

// matchScript 匹配 ^{...} / _{...}，花括号按嵌套层级配对
//
// 花括号不闭合则不认领区间，^/_ 按普通文本处理。
func matchScript(s string, start int) (int, bool) {
	if start+1 >= len(s) || s[start+1] != '{' {
		return 0, false
	}
	level, pos := 1, start+2
	for pos < len(s) && level > 0 {
		switch s[pos] {
		case '{':
			level++
		case '}':
			level--
		}
		pos++
	}
	if level != 0 {
		return 0, false
	}
	return pos, true
}

// matchChemistry 匹配 [X...]：首字符大写字母，其余为字母/数字，
// 之后可跟电荷后缀（+、-、2+、3- 等）
func matchChemistry(s string, start int) (int, bool) {
	pos := start + 1
	if pos >= len(s) || !isUpper(s[pos]) {
		return 0, false
	}
	pos++
	for pos < len(s) && isAlnum(s[pos]) {
		pos++
	}
	if pos >= len(s) || s[pos] != ']' {
		return 0, false
	}
	pos++
	// 电荷后缀：可选数字 + 必需的 +/-；裸数字不算电荷，留给数字 pass
	mark := pos
	for mark < len(s) && isDigit(s[mark]) {
		mark++
	}
	if mark < len(s) && (s[mark] == '+' || s[mark] == '-') {
		pos = mark + 1
	}
	return pos, true
}

// matchTuple 匹配坐标元组：定界符内 2 个以上逗号分隔的
// 字母/数字/符号/空格/斜杠 token
//
// 遇到不合法字符或到串尾仍未闭合则放弃，开定界符按普通文本处理。
// 空 token（如 "[a, ]"）同样不认领。
func matchTuple(s string, start int, closeDelim byte) (int, bool) {
	pos := start + 1
	commas := 0
	blank := true // 当前 token 尚无可见字符
	for pos < len(s) {
		c := s[pos]
		switch {
		case c == closeDelim:
			if commas >= 1 && !blank {
				return pos + 1, true
			}
			return 0, false
		case c == ',':
			if blank {
				return 0, false
			}
			commas++
			blank = true
			pos++
		case c == ' ' || c == '\t':
			pos++
		case isTupleTokenChar(c):
			blank = false
			pos++
		default:
			return 0, false
		}
	}
	return 0, false
}

// ──────────────────────────────────────────────
// 字符分类
// ──────────────────────────────────────────────

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || isUpper(c) || (c >= 'a' && c <= 'z')
}

// isTupleTokenChar 坐标 token 允许的字符：字母、数字、正负号、
// 小数点、斜杠、下划线
func isTupleTokenChar(c byte) bool {
	return isAlnum(c) || c == '+' || c == '-' || c == '.' || c == '/' || c == '_'
}
