// Package language maps file extensions to language identifiers and carries
// the per-language declaration pattern catalog. Classification is a pure
// extension lookup; there is no content sniffing.
package language

import (
	"path/filepath"
	"strings"
)

// Language identifies a pattern set in the catalog.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	Rust       Language = "rust"
	C          Language = "c"
	CPP        Language = "cpp"
	Java       Language = "java"
	Go         Language = "go"
	Swift      Language = "swift"
	Kotlin     Language = "kotlin"
	PHP        Language = "php"
	Ruby       Language = "ruby"
	Dart       Language = "dart"
	SQL        Language = "sql"
	CSS        Language = "css"
	Vue        Language = "vue"
	Lua        Language = "lua"
	Scala      Language = "scala"
	Clojure    Language = "clojure"
	R          Language = "r"
	ObjC       Language = "objc"
	CSharp     Language = "csharp"
	Shell      Language = "shell"
	PowerShell Language = "powershell"
)

// extensions maps lowercase file extensions to their language. Files with
// unmapped extensions fall back to the JavaScript pattern set so unknown
// file types still get a declaration scan.
var extensions = map[string]Language{
	".py":    Python,
	".js":    JavaScript,
	".jsx":   JavaScript,
	".ts":    TypeScript,
	".tsx":   TypeScript,
	".rs":    Rust,
	".c":     C,
	".h":     C,
	".cpp":   CPP,
	".cc":    CPP,
	".cxx":   CPP,
	".hpp":   CPP,
	".java":  Java,
	".go":    Go,
	".swift": Swift,
	".kt":    Kotlin,
	".kts":   Kotlin,
	".php":   PHP,
	".rb":    Ruby,
	".dart":  Dart,
	".sql":   SQL,
	".css":   CSS,
	".scss":  CSS,
	".sass":  CSS,
	".vue":   Vue,
	".lua":   Lua,
	".scala": Scala,
	".clj":   Clojure,
	".cljs":  Clojure,
	".r":     R,
	".m":     ObjC,
	".mm":    ObjC,
	".cs":    CSharp,
	".sh":    Shell,
	".bash":  Shell,
	".ps1":   PowerShell,
}

// Classify returns the language for a filename, based purely on its
// extension (case-insensitive). Unmapped extensions classify as JavaScript.
func Classify(filename string) Language {
	ext := strings.ToLower(filepath.Ext(filename))
	if lang, ok := extensions[ext]; ok {
		return lang
	}
	return JavaScript
}

// IsSourceExtension reports whether an extension (lowercase, with dot)
// belongs to the source code set the analyzer runs on.
func IsSourceExtension(ext string) bool {
	_, ok := extensions[strings.ToLower(ext)]
	return ok
}
