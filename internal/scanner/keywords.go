package scanner

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
)

// Unknown is the free variable symbol.
const Unknown = "x"

var functionNames = map[string]struct{}{
	"sin":  {},
	"cos":  {},
	"tan":  {},
	"abs":  {},
	"exp":  {},
	"ln":   {},
	"log":  {},
	"sqrt": {},
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

type keyword struct {
	text  string
	kind  token.Kind
	value float64
}

var keywords, keywordsErr = compileKeywords(defaultKeywords())

// FunctionNames returns the recognized function names, sorted.
func FunctionNames() []string {
	names := maps.Keys(functionNames)
	slices.Sort(names)
	return names
}

// ConstantNames returns the recognized constant names, sorted.
func ConstantNames() []string {
	names := maps.Keys(constants)
	slices.Sort(names)
	return names
}

func defaultKeywords() []keyword {
	table := make([]keyword, 0, len(functionNames)+len(constants)+1)
	for name := range functionNames {
		table = append(table, keyword{text: name, kind: token.Operator})
	}
	for name, value := range constants {
		table = append(table, keyword{text: name, kind: token.Constant, value: value})
	}
	return append(table, keyword{text: Unknown, kind: token.Unknown})
}

// compileKeywords validates the table and orders it for longest-first matching.
func compileKeywords(table []keyword) ([]keyword, error) {
	seen := make(map[string]struct{}, len(table))
	for _, kw := range table {
		if kw.text == "" {
			return nil, fmt.Errorf("%w empty keyword", calcerrors.ErrPatternCompile)
		}
		for _, r := range kw.text {
			if !isAlpha(r) {
				return nil, fmt.Errorf("%w keyword %q contains %q", calcerrors.ErrPatternCompile, kw.text, r)
			}
		}
		if _, dup := seen[kw.text]; dup {
			return nil, fmt.Errorf("%w duplicate keyword %q", calcerrors.ErrPatternCompile, kw.text)
		}
		seen[kw.text] = struct{}{}
	}

	compiled := slices.Clone(table)
	slices.SortFunc(compiled, func(a, b keyword) int {
		if len(a.text) != len(b.text) {
			return len(b.text) - len(a.text)
		}
		if a.text < b.text {
			return -1
		}
		if a.text > b.text {
			return 1
		}
		return 0
	})
	return compiled, nil
}

// matchKeyword returns the longest keyword that prefixes word.
func matchKeyword(table []keyword, word []rune) (keyword, bool) {
	for _, kw := range table {
		if len(kw.text) > len(word) {
			continue
		}
		if string(word[:len(kw.text)]) == kw.text {
			return kw, true
		}
	}
	return keyword{}, false
}
