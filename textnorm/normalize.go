package textnorm

import "strings"

// 该包负责把原始字节流替换为可直接绘制的 ASCII 文本。
// 常见的"智能标点"（弯引号、省略号、长破折号等）在 UTF-8 与
// Windows-1252 两种编码下都有出现，这里统一映射为等价的 ASCII 序列；
// 未识别的字节原样透传（包括 CR/LF，后续分词依赖它们）。

// Substitution 描述一条替换规则：匹配 Pattern 的前缀字节序列，输出 Repl。
type Substitution struct {
	Pattern []byte
	Repl    string
}

// Table 是进程级只读的替换表，按模式长度从长到短排列，
// 匹配时取第一条命中的规则。
var Table = []Substitution{
	// 三字节 UTF-8（E2 80 xx）
	{Pattern: []byte{0xE2, 0x80, 0x98}, Repl: "'"},   // 左单引号
	{Pattern: []byte{0xE2, 0x80, 0x99}, Repl: "'"},   // 右单引号
	{Pattern: []byte{0xE2, 0x80, 0xB2}, Repl: "'"},   // 撇号（prime）
	{Pattern: []byte{0xE2, 0x80, 0x9C}, Repl: "\""},  // 左双引号
	{Pattern: []byte{0xE2, 0x80, 0x9D}, Repl: "\""},  // 右双引号
	{Pattern: []byte{0xE2, 0x80, 0x94}, Repl: "-"},   // 长破折号
	{Pattern: []byte{0xE2, 0x80, 0xA6}, Repl: "..."}, // 省略号
	{Pattern: []byte{0xE2, 0x80, 0xA2}, Repl: "*"},   // 项目符号
	// 双字节 UTF-8
	{Pattern: []byte{0xC2, 0xA9}, Repl: "(c)"}, // 版权符号
	// 单字节 Windows-1252
	{Pattern: []byte{0x91}, Repl: "'"},
	{Pattern: []byte{0x92}, Repl: "'"},
	{Pattern: []byte{0x93}, Repl: "\""},
	{Pattern: []byte{0x94}, Repl: "\""},
	{Pattern: []byte{0x96}, Repl: "-"},
	{Pattern: []byte{0x97}, Repl: "-"},
	{Pattern: []byte{0x85}, Repl: "..."},
	{Pattern: []byte{0x95}, Repl: "*"},
	{Pattern: []byte{0xA9}, Repl: "(c)"},
}

// Normalize 把 buf[start:end) 映射为可显示字符串。
// 输出长度与输入长度不保证 1:1（例如省略号展开为三个点），
// 调用方不得假定二者等长。该函数为纯函数，测量与渲染两条路径
// 必须使用同一实现以保证宽度一致。
func Normalize(buf []byte, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(buf) {
		end = len(buf)
	}
	if start >= end {
		return ""
	}
	var builder strings.Builder
	builder.Grow(end - start)
	for pos := start; pos < end; {
		sub, n := match(buf, pos, end)
		if n > 0 {
			builder.WriteString(sub)
			pos += n
			continue
		}
		builder.WriteByte(buf[pos])
		pos++
	}
	return builder.String()
}

// match 在 buf[pos:end) 上尝试替换表中的规则，返回替换文本与消耗的字节数；
// 无命中时返回 ("", 0)。
func match(buf []byte, pos, end int) (string, int) {
	for _, sub := range Table {
		n := len(sub.Pattern)
		if pos+n > end {
			continue
		}
		matched := true
		for i := 0; i < n; i++ {
			if buf[pos+i] != sub.Pattern[i] {
				matched = false
				break
			}
		}
		if matched {
			return sub.Repl, n
		}
	}
	return "", 0
}
