package siteconfig

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var (
	templateVar = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)
	markerVar   = regexp.MustCompile(`__bunnivar_([A-Za-z_][A-Za-z0-9_]*?)__`)
)

// Loader handles loading and parsing of site.yaml
type Loader struct {
	filePath string
	lookup   func(string) (string, bool)
}

// NewLoader creates a new site file loader. Template variables are
// resolved from the process environment.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
		lookup:   os.LookupEnv,
	}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads and parses the site file
func (l *Loader) Load() (File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return File{}, fmt.Errorf("failed to read site file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(markTemplateVariables(data), &file); err != nil {
		return File{}, fmt.Errorf("failed to parse site yaml: %w", err)
	}

	for _, field := range []*string{&file.Title, &file.Tagline, &file.Description} {
		*field = expandTemplateVariables(*field, l.lookup)
	}

	return file, nil
}

// markTemplateVariables rewrites {{VAR}} into a plain-scalar-safe marker so
// the file parses whether or not the placeholder is quoted.
// Example: "tagline: {{BUNNI_TAGLINE}}" -> "tagline: __bunnivar_BUNNI_TAGLINE__"
func markTemplateVariables(data []byte) []byte {
	return templateVar.ReplaceAll(data, []byte("__bunnivar_${1}__"))
}

// expandTemplateVariables replaces markers in a decoded value with the
// variable's value, verbatim. Unset variables become empty so the field falls
// back to its default.
func expandTemplateVariables(value string, lookup func(string) (string, bool)) string {
	return markerVar.ReplaceAllStringFunc(value, func(m string) string {
		v, _ := lookup(markerVar.FindStringSubmatch(m)[1])
		return v
	})
}
