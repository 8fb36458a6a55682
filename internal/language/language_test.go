package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		filename string
		want     Language
	}{
		{"main.py", Python},
		{"app.js", JavaScript},
		{"Component.jsx", JavaScript},
		{"server.ts", TypeScript},
		{"App.tsx", TypeScript},
		{"lib.rs", Rust},
		{"util.c", C},
		{"util.h", C},
		{"engine.cpp", CPP},
		{"engine.hpp", CPP},
		{"Main.java", Java},
		{"scanner.go", Go},
		{"View.swift", Swift},
		{"Service.kt", Kotlin},
		{"index.php", PHP},
		{"model.rb", Ruby},
		{"widget.dart", Dart},
		{"schema.sql", SQL},
		{"style.css", CSS},
		{"theme.scss", CSS},
		{"App.vue", Vue},
		{"init.lua", Lua},
		{"Actor.scala", Scala},
		{"core.clj", Clojure},
		{"analysis.r", R},
		{"Controller.m", ObjC},
		{"Program.cs", CSharp},
		{"deploy.sh", Shell},
		{"setup.bash", Shell},
		{"install.ps1", PowerShell},
		// case-insensitive extension
		{"MAIN.PY", Python},
		{"Lib.RS", Rust},
		// unmapped extensions fall back to javascript
		{"data.xyz", JavaScript},
		{"Makefile", JavaScript},
		{"README.md", JavaScript},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.filename), "file %q", tt.filename)
	}
}

func TestIsSourceExtension(t *testing.T) {
	assert.True(t, IsSourceExtension(".py"))
	assert.True(t, IsSourceExtension(".GO"))
	assert.False(t, IsSourceExtension(".md"))
	assert.False(t, IsSourceExtension(".json"))
	assert.False(t, IsSourceExtension(""))
}
