package chart

import (
	"context"
	"fmt"
	"go/scanner"
	"go/token"
	"io"
	"regexp"
	"strings"

	"github.com/traefik/yaegi/interp"
)

var (
	importBlock = regexp.MustCompile(`(?s)\bimport\s*\(.*?\)`)
	importLine  = regexp.MustCompile(`(?m)^\s*(import\s+.*|package\s+\w+)\s*$`)
)

// runScript 在一个全新的解释器里执行图表脚本.
// 解释器只加载了 plt 一个包, 没有任何标准库符号, 脚本无法访问文件/网络/进程.
func runScript(ctx context.Context, code string) (*Figure, error) {
	fig := NewFigure()

	i := interp.New(interp.Options{
		Stdout: io.Discard,
		Stderr: io.Discard,
	})
	if err := i.Use(fig.exports()); err != nil {
		return nil, fmt.Errorf("bind %s: %w", LibraryName, err)
	}

	// 整个 main 包一次求值, yaegi 会在求值时执行 main
	if _, err := i.EvalWithContext(ctx, wrapProgram(code)); err != nil {
		return nil, fmt.Errorf("run chart script: %w", err)
	}
	if err := fig.Err(); err != nil {
		return nil, err
	}
	return fig, nil
}

// wrapProgram 把语句列表包成 main 包.
// 具名函数只能在文件作用域声明, 提到 main 之外; 其余语句 (含 var/const/type) 原样放进 main.
func wrapProgram(code string) string {
	decls, body := splitFuncDecls(stripImports(code))

	var sb strings.Builder
	fmt.Fprintf(&sb, "package main\n\nimport %q\n\n", LibraryName)
	for _, decl := range decls {
		sb.WriteString(decl)
		sb.WriteString("\n\n")
	}
	// body 前后各留一个换行, 末行是注释时不会吞掉 main 的右花括号
	sb.WriteString("func main() {\n")
	sb.WriteString(body)
	sb.WriteString("\n}\n")
	return sb.String()
}

func stripImports(code string) string {
	code = importBlock.ReplaceAllString(code, "")
	return importLine.ReplaceAllString(code, "")
}

// splitFuncDecls 取出顶层的 func Name(...) ... { ... } 声明.
// func(...) 开头的是函数字面量, 留在 body 里.
func splitFuncDecls(code string) (decls []string, body string) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(code))
	var s scanner.Scanner
	s.Init(file, []byte(code), nil, 0)

	var sb strings.Builder
	depth, copied := 0, 0
	// funcAt 顶层 func 关键字的位置, declAt 当前声明的起点
	funcAt, declAt := -1, -1
	inBody := false
	prevTok := token.ILLEGAL
	for {
		pos, tok, _ := s.Scan()
		if tok == token.EOF {
			break
		}
		off := file.Offset(pos)

		switch tok {
		case token.FUNC:
			if depth == 0 && declAt < 0 {
				funcAt = off
			}
		case token.IDENT:
			if funcAt >= 0 && prevTok == token.FUNC {
				declAt = funcAt
			}
			funcAt = -1
		case token.LBRACE:
			// 返回值类型里的 struct{} / interface{} 不是函数体
			if declAt >= 0 && depth == 0 && prevTok != token.STRUCT && prevTok != token.INTERFACE {
				inBody = true
			}
			depth++
		case token.LPAREN, token.LBRACK:
			funcAt = -1
			depth++
		case token.RBRACE:
			depth--
			if declAt >= 0 && inBody && depth == 0 {
				sb.WriteString(code[copied:declAt])
				decls = append(decls, code[declAt:off+1])
				copied = off + 1
				declAt, inBody = -1, false
			}
		case token.RPAREN, token.RBRACK:
			depth--
		default:
			if tok != token.FUNC {
				funcAt = -1
			}
		}
		prevTok = tok
	}
	sb.WriteString(code[copied:])
	return decls, sb.String()
}
