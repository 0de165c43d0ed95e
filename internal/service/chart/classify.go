package chart

import (
	"strings"
)

const fence = "```"

// Classify 判断模型输出是图表代码还是纯文本.
// 以围栏开头, 且围栏标记为 plt 或正文任意位置出现 plt, 即视为图表代码.
// 这是启发式判断: 恰好提到 plt 的代码块回答也会被当成图表.
func Classify(output string) Classification {
	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, fence) {
		return Classification{Kind: KindText}
	}

	info, body := splitFence(output)
	if info == LibraryName || strings.Contains(output, LibraryName) {
		return Classification{Kind: KindChart, Code: body}
	}
	return Classification{Kind: KindText}
}

// splitFence 拆出围栏的语言标记和正文, 闭合围栏之后的内容丢弃
func splitFence(s string) (info, body string) {
	s = strings.TrimPrefix(s, fence)
	first, rest, found := strings.Cut(s, "\n")
	if !found {
		// ```code``` 写在一行
		return "", strings.TrimSpace(strings.TrimSuffix(first, fence))
	}

	info = strings.TrimSpace(first)
	if strings.ContainsAny(info, " \t()\"=.") {
		// 第一行就是代码, 没有语言标记
		rest = first + "\n" + rest
		info = ""
	}
	if idx := strings.Index(rest, fence); idx >= 0 {
		rest = rest[:idx]
	}
	return info, strings.TrimSpace(rest)
}
