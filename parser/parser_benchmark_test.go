// ==============================================================================================
// FILE: parser/parser_benchmark_test.go
// ==============================================================================================
// PURPOSE: Performance benchmarks for the Parser.
//          Measures parsing throughput for simple statements, large programs, and
//          deeply nested expressions to ensure the parser scales linearly.
// ==============================================================================================

package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glint-lang/glint/lexer"
)

// BenchmarkParser_SimpleVarStatement measures the cost of parsing a single basic statement.
// Usage: go test -bench=BenchmarkParser_SimpleVarStatement ./parser
func BenchmarkParser_SimpleVarStatement(b *testing.B) {
	input := "var x = 5;"
	for i := 0; i < b.N; i++ {
		l := lexer.New(input)
		p := New(l)
		p.ParseProgram()
	}
}

// BenchmarkParser_LargeProgram measures parsing speed for a 1000-line file.
// Usage: go test -bench=BenchmarkParser_LargeProgram ./parser
func BenchmarkParser_LargeProgram(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString(fmt.Sprintf("var var%d = %d;\n", i, i))
	}
	input := sb.String()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l := lexer.New(input)
		p := New(l)
		p.ParseProgram()
	}
}

// BenchmarkParser_DeeplyNestedMath measures recursive parsing depth efficiency.
// Usage: go test -bench=BenchmarkParser_DeeplyNestedMath ./parser
func BenchmarkParser_DeeplyNestedMath(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("var result = 1")
	for i := 0; i < 100; i++ {
		sb.WriteString(" + 1")
	}
	sb.WriteString(";")
	input := sb.String()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l := lexer.New(input)
		p := New(l)
		p.ParseProgram()
	}
}

// BenchmarkParser_SingleExpression measures the `parse`/`evaluate` CLI
// subcommands' entry point, which skips full statement parsing.
func BenchmarkParser_SingleExpression(b *testing.B) {
	input := "1 + 2 * 3 - 4 / 5"

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l := lexer.New(input)
		p := New(l)
		p.ParseSingleExpression()
	}
}
