package tui

// Color constants for the fluxo board theme
const (
	// Base Colors
	ColorAppBackground    = ""        // Use terminal default background
	ColorCardBackground   = "#1B1530" // Dark purple
	ColorColumnBackground = "#15112A"
	ColorBorder           = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Card content, titles, user input
	ColorSecondaryText = "#B1B8C7" // Counters, assignee names
	ColorDisabledText  = "#6D7383" // Empty column hints
	ColorPlaceholder   = "#B1B8C7"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Logo, focused column border
	ColorAccentBright = "#A78BFA" // Selected card, current step

	// State Colors
	ColorError   = "#EF4444" // Validation errors, delete buttons
	ColorSuccess = "#22C55E" // Drop target
	ColorWarning = "#F59E0B" // Unread notifications
)
