package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Skin is the colour palette of the TUI. Custom skins live in
// <configDir>/skins/<name>.yml and only need to set the colours they change.
type Skin struct {
	Name   string `yaml:"name"`
	Accent string `yaml:"accent"`
	Text   string `yaml:"text"`
	Muted  string `yaml:"muted"`
	Border string `yaml:"border"`
	Error  string `yaml:"error"`
	Notice string `yaml:"notice"`
	Line   string `yaml:"line"`
}

var builtinSkins = map[string]Skin{
	"default": {
		Name:   "default",
		Accent: "39",
		Text:   "252",
		Muted:  "244",
		Border: "238",
		Error:  "196",
		Notice: "214",
		Line:   "45",
	},
	"mono": {
		Name:   "mono",
		Accent: "255",
		Text:   "252",
		Muted:  "245",
		Border: "240",
		Error:  "255",
		Notice: "250",
		Line:   "255",
	},
}

var (
	ColorAccent lipgloss.Color
	ColorWhite  lipgloss.Color
	ColorGray   lipgloss.Color
	ColorBorder lipgloss.Color
	ColorRed    lipgloss.Color
	ColorAmber  lipgloss.Color
	ColorLine   lipgloss.Color

	titleStyle   lipgloss.Style
	mutedStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	noticeStyle  lipgloss.Style
	sectionStyle lipgloss.Style
	lineStyle    lipgloss.Style
)

func init() {
	applySkin(builtinSkins["default"])
}

// InitializeSkin activates the named skin. Built-in skins are resolved
// first, then <configDir>/skins/<name>.yml.
func InitializeSkin(name, configDir string) error {
	if name == "" {
		name = "default"
	}
	if skin, ok := builtinSkins[name]; ok {
		applySkin(skin)
		return nil
	}

	skin, err := loadSkinFile(filepath.Join(configDir, "skins", name+".yml"))
	if err != nil {
		applySkin(builtinSkins["default"])
		return err
	}
	applySkin(skin)
	return nil
}

func loadSkinFile(path string) (Skin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Skin{}, fmt.Errorf("skin file %s not found", path)
		}
		return Skin{}, err
	}

	skin := builtinSkins["default"]
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return Skin{}, fmt.Errorf("parse skin %s: %w", path, err)
	}
	return skin, nil
}

func applySkin(s Skin) {
	ColorAccent = lipgloss.Color(s.Accent)
	ColorWhite = lipgloss.Color(s.Text)
	ColorGray = lipgloss.Color(s.Muted)
	ColorBorder = lipgloss.Color(s.Border)
	ColorRed = lipgloss.Color(s.Error)
	ColorAmber = lipgloss.Color(s.Notice)
	ColorLine = lipgloss.Color(s.Line)

	titleStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(ColorGray)
	errorStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	noticeStyle = lipgloss.NewStyle().
		Foreground(ColorAmber).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAmber).
		Padding(0, 1)
	sectionStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)
	lineStyle = lipgloss.NewStyle().Foreground(ColorLine)
}
