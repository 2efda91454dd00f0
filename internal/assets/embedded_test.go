package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoaderLoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("serves the built-in styles", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"classic", "plain"} {
			css, err := loader.LoadStyle(name)
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", name, err)
			}
			if !strings.Contains(css, "font-family") {
				t.Errorf("style %q should set a font-family", name)
			}
		}
	})

	t.Run("missing name is ErrStyleNotFound", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.LoadStyle("no-such-style"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("unsafe names are rejected before the read", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "../secret", `..\secret`, "style.name"} {
			if _, err := loader.LoadStyle(name); !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("LoadStyle(%q) error = %v, want ErrInvalidAssetName", name, err)
			}
		}
	})
}

func TestEmbeddedLoaderLoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("serves the built-in templates", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"default", "linear"} {
			html, err := loader.LoadTemplate(name)
			if err != nil {
				t.Fatalf("LoadTemplate(%q) error = %v", name, err)
			}
			if !strings.Contains(html, "section-{{.Index}}") {
				t.Errorf("template %q should anchor its sections", name)
			}
		}
	})

	t.Run("missing name is ErrTemplateNotFound", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.LoadTemplate("no-such-template"); !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("unsafe names are rejected before the read", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "../secret", `..\secret`, "template.name"} {
			if _, err := loader.LoadTemplate(name); !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("LoadTemplate(%q) error = %v, want ErrInvalidAssetName", name, err)
			}
		}
	})
}

// Every built-in template must bind the fields the generator fills in.
func TestEmbeddedTemplatesRenderSections(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{"default", "linear"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(name)
			if err != nil {
				t.Fatalf("LoadTemplate(%q) error = %v", name, err)
			}

			for _, want := range []string{"{{.Title}}", "{{- range .Sections}}", "{{.Prose}}", "{{.Code}}"} {
				if !strings.Contains(got, want) {
					t.Errorf("template %q should contain %q", name, want)
				}
			}
		})
	}
}
