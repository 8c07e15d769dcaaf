package tui

import (
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ShimmerConfig holds configuration for shimmer effects
type ShimmerConfig struct {
	Enabled        bool    // animations: on|off
	SpeedMs        int     // tick interval (default 100)
	WidthRatio     float64 // highlight width relative to the text (default 0.25)
	CycleMs        int     // total cycle time in ms (default 1800)
	PauseBetweenMs int     // pause between cycles in ms (default 500)
}

// ShimmerState holds the current state of a shimmer effect
type ShimmerState struct {
	Center            float64 // current center position
	LastUpdate        time.Time
	Active            bool
	Config            ShimmerConfig
	SupportsTrueColor bool
	IsPaused          bool
	PauseStartTime    time.Time

	base      colorful.Color
	highlight colorful.Color
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig(enabled bool) ShimmerConfig {
	return ShimmerConfig{
		Enabled:        enabled,
		SpeedMs:        100,
		WidthRatio:     0.25,
		CycleMs:        1800,
		PauseBetweenMs: 500,
	}
}

// NewShimmerState creates a new shimmer state
func NewShimmerState(config ShimmerConfig) *ShimmerState {
	base, _ := colorful.Hex(ColorSecondaryText)
	highlight, _ := colorful.Hex("#EAE6FF")
	return &ShimmerState{
		LastUpdate:        time.Now(),
		Active:            config.Enabled,
		Config:            config,
		SupportsTrueColor: os.Getenv("COLORTERM") == "truecolor",
		base:              base,
		highlight:         highlight,
	}
}

// Update advances the shimmer animation
func (s *ShimmerState) Update(visibleLen int) {
	if !s.Active || visibleLen <= 0 {
		return
	}

	now := time.Now()
	if now.Sub(s.LastUpdate).Milliseconds() < int64(s.Config.SpeedMs) {
		return
	}

	if s.IsPaused {
		if now.Sub(s.PauseStartTime).Milliseconds() >= int64(s.Config.PauseBetweenMs) {
			s.IsPaused = false
			s.Center = -float64(visibleLen) * s.Config.WidthRatio // Start before the beginning
		}
		s.LastUpdate = now
		return
	}

	// glyphs to advance per tick so one sweep takes CycleMs
	ticksPerCycle := float64(s.Config.CycleMs) / float64(s.Config.SpeedMs)
	totalDistance := float64(visibleLen) * (1.0 + 2.0*s.Config.WidthRatio)
	s.Center += totalDistance / ticksPerCycle

	maxCenter := float64(visibleLen) * (1.0 + s.Config.WidthRatio)
	if s.Center >= maxCenter {
		s.IsPaused = true
		s.PauseStartTime = now
		s.Center = maxCenter
	}

	s.LastUpdate = now
}

// Reset resets the shimmer position (call when the highlighted card changes)
func (s *ShimmerState) Reset() {
	s.Center = 0
	s.LastUpdate = time.Now()
	s.IsPaused = false
	s.PauseStartTime = time.Time{}
}

// SetActive enables/disables shimmer
func (s *ShimmerState) SetActive(active bool) {
	s.Active = active && s.Config.Enabled
}

// RenderShimmerText renders text with the shimmer highlight, truncated to maxWidth runes
func (s *ShimmerState) RenderShimmerText(text string, maxWidth int) string {
	runes := []rune(text)
	if maxWidth > 3 && len(runes) > maxWidth {
		runes = append(runes[:maxWidth-3], []rune("...")...)
	}
	if len(runes) == 0 {
		return ""
	}

	s.Update(len(runes))

	if !s.Active {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render(string(runes))
	}
	if !s.SupportsTrueColor {
		return s.renderFallback(runes)
	}
	return s.renderTrueColor(runes)
}

// renderTrueColor blends each glyph towards the highlight along a bell curve
func (s *ShimmerState) renderTrueColor(runes []rune) string {
	sigma := s.Config.WidthRatio * float64(len(runes)) / 2.0
	if sigma < 1.0 {
		sigma = 1.0
	}

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - s.Center
		weight := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		color := s.base.BlendLab(s.highlight, math.Min(weight, 1)).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex())).Render(string(r)))
	}
	return b.String()
}

// renderFallback highlights a fixed window for terminals without truecolor
func (s *ShimmerState) renderFallback(runes []rune) string {
	width := int(s.Config.WidthRatio * float64(len(runes)))
	if width < 1 {
		width = 1
	}
	start := int(s.Center) - width/2
	end := start + width

	highlight := lipgloss.NewStyle().Foreground(lipgloss.Color("147"))
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	return base.Render(string(runes[:clamp(start, 0, len(runes))])) +
		highlight.Render(string(runes[clamp(start, 0, len(runes)):clamp(end, 0, len(runes))])) +
		base.Render(string(runes[clamp(end, 0, len(runes)):]))
}

// GetTickInterval returns the interval for tea.Tick commands
func (s *ShimmerState) GetTickInterval() time.Duration {
	if !s.Active {
		return 0
	}
	return time.Duration(s.Config.SpeedMs) * time.Millisecond
}

// ShouldTick returns true if shimmer should be ticking
func (s *ShimmerState) ShouldTick() bool {
	return s.Active && s.Config.Enabled
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
