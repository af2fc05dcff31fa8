package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shade/internal/domain/entity"
)

// ConfigSchemaRenderer prints configuration keys, one boxed block per section.
type ConfigSchemaRenderer struct {
	theme *Theme
}

func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render keeps the section order of keys.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKey) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconConfig)
	parts := []string{icon + " " + r.theme.Title.Render("Configuration keys"), ""}
	for _, section := range entity.GroupConfigKeys(keys) {
		parts = append(parts, r.renderSection(section), "")
	}
	return strings.Join(parts, "\n")
}

func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKey) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal config keys: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderSection(section entity.ConfigSection) string {
	width := 0
	for _, k := range section.Keys {
		width = max(width, len(k.Key))
	}

	lines := []string{r.theme.Highlight.Render(section.Name)}
	for _, k := range section.Keys {
		lines = append(lines, r.renderKey(k, width)...)
	}
	return r.theme.Box.PaddingTop(0).Render(strings.Join(lines, "\n"))
}

func (r *ConfigSchemaRenderer) renderKey(k entity.ConfigKey, width int) []string {
	def := k.Default
	if def == "" {
		def = `""`
	}
	lines := []string{fmt.Sprintf("%s  %s = %s",
		r.theme.PropKey.Render(fmt.Sprintf("%-*s", width, k.Key)),
		r.theme.Subtle.Render(k.Type),
		r.theme.PropValue.Render(def),
	)}

	indent := strings.Repeat(" ", width+2)
	lines = append(lines, indent+r.theme.Subtle.Render(k.Description))
	if len(k.Values) > 0 {
		lines = append(lines, indent+r.theme.Normal.Render("one of: "+strings.Join(k.Values, " | ")))
	}
	if k.Env != "" {
		lines = append(lines, indent+r.theme.Normal.Render("env: $"+k.Env))
	}
	return lines
}
