package token

// 该包把字节区间切分为排版用的最小单元：单词、空格与换行。
// 分词不做任何字符替换，单词文本的规范化由 textnorm 在排版阶段完成。

// Kind 表示一个词法单元的类别。
type Kind int

const (
	// Word 是一段不含空格与换行的连续字节。
	Word Kind = iota
	// Space 是单个空格字节。
	Space
	// CR 是回车（\r），排版时触发换行。
	CR
	// LF 是换行（\n），排版时不产生任何光标效果，仅被消费。
	LF
)

// String 返回类别的可读名称。
func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Space:
		return "space"
	case CR:
		return "cr"
	case LF:
		return "lf"
	default:
		return "unknown"
	}
}

// Next 从 buf[pos] 起识别下一个单元，返回类别与该单元的结束偏移（半开区间）。
// 约定 pos < limit；每次调用至少消费一个字节，因此从同一位置反复调用
// 必然严格推进，这是分页器前向推进保证的基础。
func Next(buf []byte, pos, limit int) (Kind, int) {
	if limit > len(buf) {
		limit = len(buf)
	}
	switch buf[pos] {
	case '\r':
		return CR, pos + 1
	case '\n':
		return LF, pos + 1
	case ' ':
		return Space, pos + 1
	}
	end := pos + 1
	for end < limit {
		switch buf[end] {
		case ' ', '\r', '\n':
			return Word, end
		}
		end++
	}
	return Word, end
}
