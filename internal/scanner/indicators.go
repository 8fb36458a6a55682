package scanner

// Technology indicator buckets. A file lands in a bucket when any of the
// bucket's markers is a substring of its relative path or its name. The
// markers are filename and layout conventions, not content checks.
var techIndicators = map[string][]string{
	"frontend": {
		"package.json", "vite.config.ts", "tailwind.config.ts", "components.json",
		"client/", "App.tsx", "src/components/", ".vue", ".jsx", "angular.json",
	},
	"backend": {
		"server/", "api/", "routes.ts", "index.ts", "storage.ts", "src/main.rs",
		"src/lib.rs", "app.py", "main.go", "server.js",
	},
	"ai_integration": {
		"ai-service.ts", "openai", "gemini", "llm-", "anthropic", "claude",
		"model_provider", "ai_api", "embeddings",
	},
	"database": {
		"drizzle.config.ts", "schema.ts", "prisma/", ".sql", "migrations/",
		"src/schema.rs", "src/models.rs", "diesel.toml", "alembic/", "database.py",
	},
	"rust_integration": {
		"Cargo.toml", ".rs", "diesel.toml", "rust-toolchain.toml",
	},
	"deployment": {
		"Dockerfile", "docker-compose", "vercel.json", "netlify.toml",
		"railway.json", "render.yaml", ".github/workflows/",
	},
	"testing": {
		"tests/", "test-", ".test.", ".spec.", "_test.go", "jest.config",
		"cypress/", "playwright.config", "conftest.py",
	},
	"documentation": {
		"README.md", ".md", "docs/", "ARCHITECTURE", "CHANGELOG",
	},
}

// keyFiles are the manifests and entry points surfaced in the report.
var keyFiles = map[string]bool{
	"package.json":       true,
	"requirements.txt":   true,
	"pyproject.toml":     true,
	"Cargo.toml":         true,
	"pom.xml":            true,
	"go.mod":             true,
	"README.md":          true,
	"LICENSE":            true,
	".gitignore":         true,
	"main.py":            true,
	"index.js":           true,
	"app.py":             true,
	"server.js":          true,
	"main.go":            true,
	"docker-compose.yml": true,
	"Dockerfile":         true,
	"tsconfig.json":      true,
	"vite.config.ts":     true,
	"tailwind.config.ts": true,
	"drizzle.config.ts":  true,
	"components.json":    true,
	"poetry.lock":        true,
	"yarn.lock":          true,
	"package-lock.json":  true,
}

// binaryExtensions are never counted or analyzed.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true,
	".ico": true, ".webp": true, ".mp4": true, ".avi": true, ".mov": true,
	".mkv": true, ".pdf": true, ".zip": true, ".tar": true, ".gz": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true, ".otf": true,
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".wasm": true,
}

// lockFiles are counted normally unless they exceed the size cutoff in
// the scanner, where they are treated as generated noise.
var lockFiles = map[string]bool{
	"package-lock.json": true,
	"yarn.lock":         true,
	"pnpm-lock.yaml":    true,
	"poetry.lock":       true,
	"Cargo.lock":        true,
}

// hiddenAllowlist are dotfiles still worth counting.
var hiddenAllowlist = map[string]bool{
	".gitignore":   true,
	".env.example": true,
}
