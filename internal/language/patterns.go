package language

import "regexp"

// The catalog below is deliberately heuristic: short per-language regex
// lists that accept false positives (an assignment that looks like a
// function) in exchange for linear per-line cost and no parser dependency.
// Each pattern captures exactly one group, the declaration identifier.
// Duplicate matches on the same line from different patterns are each
// recorded by the analyzer; the lists are ordered for coverage, not
// precedence.

var pythonPatterns = compile(
	`def\s+([a-z_][a-z0-9_]*)\s*\(`,
	`async\s+def\s+([a-z_][a-z0-9_]*)\s*\(`,
	`class\s+([A-Z]\w*)\s*[:\(]`,
)

var javascriptPatterns = compile(
	`(?:export\s+)?(?:async\s+)?function\s+([A-Za-z_]\w*)`,
	`(?:export\s+)?const\s+([A-Za-z_]\w*)\s*=.*?(?:=>|\()`,
	`const\s+(use[A-Z]\w*)\s*=`,
	`class\s+([A-Z]\w*)`,
)

var rustPatterns = compile(
	`fn\s+([a-z_][a-z0-9_]*)\s*[\(<]`,
	`pub\s+fn\s+([a-z_][a-z0-9_]*)\s*[\(<]`,
	`async\s+fn\s+([a-z_][a-z0-9_]*)\s*[\(<]`,
	`struct\s+([A-Z]\w*)`,
	`enum\s+([A-Z]\w*)`,
	`trait\s+([A-Z]\w*)`,
)

var cPatterns = compile(
	`(?:static\s+)?(?:inline\s+)?(?:\w+\s+)*([a-z_][a-z0-9_]*)\s*\([^)]*\)\s*\{`,
	`(?:extern\s+)?(?:\w+\s+)*([a-z_][a-z0-9_]*)\s*\([^)]*\);`,
)

var cppPatterns = compile(
	`(?:virtual\s+)?(?:static\s+)?(?:inline\s+)?(?:\w+\s+)*([a-z_][a-z0-9_]*)\s*\([^)]*\)\s*\{`,
	`(?:[A-Z]\w*)\s*::\s*([a-z_][a-z0-9_]*)\s*\(`,
	`class\s+([A-Z]\w*)`,
	`template.*class\s+([A-Z]\w*)`,
)

var javaPatterns = compile(
	`(?:public\s+)?(?:private\s+)?(?:protected\s+)?(?:static\s+)?(?:\w+\s+)*([a-z][a-zA-Z0-9_]*)\s*\([^)]*\)\s*\{`,
	`(?:public\s+)?(?:private\s+)?(?:protected\s+)?class\s+([A-Z]\w*)`,
	`(?:public\s+)?(?:private\s+)?(?:protected\s+)?interface\s+([A-Z]\w*)`,
)

var goPatterns = compile(
	`func\s+([a-z][a-zA-Z0-9_]*)\s*\(`,
	`func\s+\(\w+\s+\*?\w+\)\s+([a-z][a-zA-Z0-9_]*)\s*\(`,
	`type\s+([A-Z]\w*)\s+(?:struct|interface)`,
)

var swiftPatterns = compile(
	`(?:public\s+)?(?:private\s+)?(?:internal\s+)?func\s+([a-z][a-zA-Z0-9_]*)\s*\(`,
	`(?:public\s+)?(?:private\s+)?(?:internal\s+)?class\s+([A-Z]\w*)`,
	`(?:public\s+)?(?:private\s+)?(?:internal\s+)?struct\s+([A-Z]\w*)`,
)

var kotlinPatterns = compile(
	`(?:suspend\s+)?(?:inline\s+)?fun\s+([a-z][a-zA-Z0-9_]*)\s*\(`,
	`(?:data\s+)?class\s+([A-Z]\w*)`,
	`(?:sealed\s+)?interface\s+([A-Z]\w*)`,
)

var phpPatterns = compile(
	`(?:public\s+)?(?:private\s+)?(?:protected\s+)?function\s+([a-z_][a-zA-Z0-9_]*)\s*\(`,
	`class\s+([A-Z]\w*)`,
	`trait\s+([A-Z]\w*)`,
)

var rubyPatterns = compile(
	`def\s+([a-z_][a-zA-Z0-9_]*[?!]?)`,
	`class\s+([A-Z]\w*)`,
	`module\s+([A-Z]\w*)`,
)

var dartPatterns = compile(
	`(?:static\s+)?(?:async\s+)?(?:\w+\s+)*([a-z][a-zA-Z0-9_]*)\s*\([^)]*\)\s*(?:async\s*)?\{`,
	`class\s+([A-Z]\w*)`,
	`mixin\s+([A-Z]\w*)`,
)

var sqlPatterns = compile(
	`(?:CREATE\s+)?(?:OR\s+REPLACE\s+)?(?:FUNCTION|PROCEDURE)\s+([a-z_][a-zA-Z0-9_]*)`,
	`CREATE\s+TRIGGER\s+([a-z_][a-zA-Z0-9_]*)`,
)

var cssPatterns = compile(
	`@function\s+([a-z-][a-z0-9-]*)`,
	`@mixin\s+([a-z-][a-z0-9-]*)`,
	`\.([a-z-][a-z0-9-]*)\s*\{`,
)

var vuePatterns = compile(
	`(?:async\s+)?([a-z][a-zA-Z0-9_]*)\s*\([^)]*\)\s*\{`,
	`(computed):\s*\{`,
	`(methods):\s*\{`,
)

var luaPatterns = compile(
	`function\s+([a-z_][a-zA-Z0-9_]*)\s*\(`,
	`local\s+function\s+([a-z_][a-zA-Z0-9_]*)\s*\(`,
	`([a-z_][a-zA-Z0-9_]*)\s*=\s*function\s*\(`,
)

var scalaPatterns = compile(
	`def\s+([a-z_][a-zA-Z0-9_]*)\s*[\(\[]`,
	`class\s+([A-Z]\w*)`,
	`object\s+([A-Z]\w*)`,
	`trait\s+([A-Z]\w*)`,
)

var clojurePatterns = compile(
	`\(defn\s+([a-z-][a-z0-9-]*)`,
	`\(defn-\s+([a-z-][a-z0-9-]*)`,
	`\(defmacro\s+([a-z-][a-z0-9-]*)`,
)

var rPatterns = compile(
	`([a-z_][a-zA-Z0-9_\.]*)\s*<-\s*function\s*\(`,
	`([a-z_][a-zA-Z0-9_\.]*)\s*=\s*function\s*\(`,
)

var objcPatterns = compile(
	`-\s*\([^)]+\)\s*([a-z_][a-zA-Z0-9_]*)`,
	`\+\s*\([^)]+\)\s*([a-z_][a-zA-Z0-9_]*)`,
	`@interface\s+([A-Z]\w*)`,
	`@implementation\s+([A-Z]\w*)`,
)

var csharpPatterns = compile(
	`(?:public\s+|private\s+|protected\s+|internal\s+)?(?:static\s+)?(?:virtual\s+)?(?:override\s+)?(?:async\s+)?(?:abstract\s+)?(?:void|Task(?:<[^>]+>)?|string|int|bool|double|float|decimal|char|byte|short|long|object|var|I?[A-Z]\w*(?:<[^>]+>)?)\s+([A-Z][a-zA-Z0-9_]*)\s*\([^)]*\)`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?(?:static\s+)?(?:virtual\s+)?(?:override\s+)?(?:async\s+)?(?:abstract\s+)?(?:void|Task(?:<[^>]+>)?|string|int|bool|double|float|decimal|char|byte|short|long|object|var|I?[A-Z]\w*(?:<[^>]+>)?)\s+([a-z][a-zA-Z0-9_]*)\s*\([^)]*\)`,
	`^\s*(?:public\s+|private\s+|protected\s+|internal\s+)?([A-Z]\w*)\s*\([^)]*\)\s*(?::\s*(?:base|this)\s*\([^)]*\))?\s*\{`,
	`~([A-Z]\w*)\s*\(\s*\)`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?(?:static\s+)?(?:\w+\s+)?([A-Z][a-zA-Z0-9_]*)<[^>]+>\s*\([^)]*\)`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?(?:static\s+)?(?:\w+\s+)?([a-z][a-zA-Z0-9_]*)<[^>]+>\s*\([^)]*\)`,
	`(?:public\s+)?(?:static\s+)(?:\w+\s+)([A-Z][a-zA-Z0-9_]*)\s*\(\s*this\s+`,
	`(?:public\s+)?(?:static\s+)(?:\w+\s+)([a-z][a-zA-Z0-9_]*)\s*\(\s*this\s+`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?(?:static\s+)?(?:virtual\s+)?(?:override\s+)?(?:\w+\s+)([A-Z][a-zA-Z0-9_]*)\s*\{\s*(?:get|set)`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?(?:\w+\s+)([A-Z][a-zA-Z0-9_]*)\s*=>\s*`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?(?:\w+\s+)([a-z][a-zA-Z0-9_]*)\s*=>\s*`,
	`^\s{4,}(?:async\s+)?(?:\w+\s+)([A-Z][a-zA-Z0-9_]*)\s*\([^)]*\)\s*(?:\{|=>)`,
	`^\s{4,}(?:async\s+)?(?:\w+\s+)([a-z][a-zA-Z0-9_]*)\s*\([^)]*\)\s*(?:\{|=>)`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?(?:abstract\s+|sealed\s+|static\s+)?(?:partial\s+)?class\s+([A-Z]\w*)`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?(?:partial\s+)?interface\s+([A-Z]\w*)`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?(?:readonly\s+)?struct\s+([A-Z]\w*)`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?enum\s+([A-Z]\w*)`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?record\s+([A-Z]\w*)`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?delegate\s+(?:\w+\s+)([A-Z][a-zA-Z0-9_]*)\s*\(`,
	`(?:public\s+|private\s+|protected\s+|internal\s+)?(?:static\s+)?event\s+(?:\w+\s+)([A-Z][a-zA-Z0-9_]*)`,
	`operator\s+([+\-*/=!<>]+|==|!=|true|false)\s*\(`,
)

var shellPatterns = compile(
	`function\s+([a-z_][a-zA-Z0-9_]*)\s*\(`,
	`([a-z_][a-zA-Z0-9_]*)\s*\(\s*\)\s*\{`,
	`^\s*([a-z_][a-zA-Z0-9_]*)\s*\(\)\s*\{`,
)

var powershellPatterns = compile(
	`function\s+([A-Za-z][a-zA-Z0-9_-]*)`,
	`Filter\s+([A-Za-z][a-zA-Z0-9_-]*)`,
	`([A-Za-z][a-zA-Z0-9_-]*)\s*=\s*\{`,
)

var catalog = map[Language][]*regexp.Regexp{
	Python:     pythonPatterns,
	JavaScript: javascriptPatterns,
	TypeScript: javascriptPatterns, // TypeScript shares the JavaScript set
	Rust:       rustPatterns,
	C:          cPatterns,
	CPP:        cppPatterns,
	Java:       javaPatterns,
	Go:         goPatterns,
	Swift:      swiftPatterns,
	Kotlin:     kotlinPatterns,
	PHP:        phpPatterns,
	Ruby:       rubyPatterns,
	Dart:       dartPatterns,
	SQL:        sqlPatterns,
	CSS:        cssPatterns,
	Vue:        vuePatterns,
	Lua:        luaPatterns,
	Scala:      scalaPatterns,
	Clojure:    clojurePatterns,
	R:          rPatterns,
	ObjC:       objcPatterns,
	CSharp:     csharpPatterns,
	Shell:      shellPatterns,
	PowerShell: powershellPatterns,
}

// PatternsFor returns the ordered declaration patterns for a language.
// Unknown languages get the JavaScript set.
func PatternsFor(lang Language) []*regexp.Regexp {
	if patterns, ok := catalog[lang]; ok {
		return patterns
	}
	return javascriptPatterns
}

// Languages returns every language with a dedicated pattern set.
func Languages() []Language {
	langs := make([]Language, 0, len(catalog))
	for lang := range catalog {
		langs = append(langs, lang)
	}
	return langs
}

func compile(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}
