package preview

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"devresume/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/preview.html"))

// Palette holds the chrome colors around the resume sheet.
type Palette struct {
	Background    string
	Surface       string
	Border        string
	Text          string
	TextSecondary string
	Canvas        string
}

var palettes = map[domain.Theme]Palette{
	domain.ThemeDark: {
		Background:    "#0F172A",
		Surface:       "#1e293b",
		Border:        "#334155",
		Text:          "#F1F5F9",
		TextSecondary: "#94A3B8",
		Canvas:        "#020617",
	},
	domain.ThemeLight: {
		Background:    "#FFFFFF",
		Surface:       "#F1F5F9",
		Border:        "#E2E8F0",
		Text:          "#0F172A",
		TextSecondary: "#64748B",
		Canvas:        "#F8F9FA",
	},
}

// PaletteFor returns the colors for a theme; unknown themes get dark.
func PaletteFor(t domain.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[domain.ThemeDark]
}

// Options controls the page around the resume.
type Options struct {
	Theme domain.Theme
	Zoom  Zoom
	// Print drops the zoom and the page chrome, leaving only the sheet.
	Print bool
}

type pageData struct {
	Resume  Resume
	Palette Palette
	Zoom    Zoom
	Scale   string
	Print   bool
}

// RenderHTML writes the resume as a standalone HTML page. The exportable
// region is the element marked with data-resume-preview.
func RenderHTML(w io.Writer, r Resume, opts Options) error {
	zoom := opts.Zoom
	if zoom == 0 || opts.Print {
		zoom = DefaultZoom
	}
	zoom = zoom.Clamp()
	data := pageData{
		Resume:  r,
		Palette: PaletteFor(opts.Theme),
		Zoom:    zoom,
		Scale:   fmt.Sprintf("%.2f", zoom.Scale()),
		Print:   opts.Print,
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	return nil
}
