package render

import (
	"sort"
	"strings"
)

// languageByExtension maps file extensions to Markdown code-fence language
// identifiers. Unknown extensions fall back to "text".
var languageByExtension = map[string]string{
	".c":      "c",
	".config": "ini",
	".cpp":    "cpp",
	".css":    "css",
	".go":     "go",
	".h":      "cpp",
	".html":   "html",
	".java":   "java",
	".js":     "javascript",
	".json":   "json",
	".jsx":    "jsx",
	".kt":     "kotlin",
	".md":     "markdown",
	".mjs":    "javascript",
	".py":     "python",
	".rs":     "rust",
	".sh":     "bash",
	".toml":   "toml",
	".ts":     "typescript",
	".tsx":    "tsx",
	".xml":    "xml",
	".yaml":   "yaml",
	".yml":    "yaml",
}

// LanguageForExtension returns the code-fence identifier for an extension.
// The extension is matched case-insensitively and may omit the leading dot.
func LanguageForExtension(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}
	return "text"
}

// Languages returns the known extension/language pairs sorted by extension.
func Languages() [][2]string {
	pairs := make([][2]string, 0, len(languageByExtension))
	for ext, lang := range languageByExtension {
		pairs = append(pairs, [2]string{ext, lang})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs
}
