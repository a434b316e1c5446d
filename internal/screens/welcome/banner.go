package welcome

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vetcards/internal/ui/theme"
)

const bannerArt = `
 ██╗   ██╗███████╗████████╗ ██████╗ █████╗ ██████╗ ██████╗ ███████╗
 ██║   ██║██╔════╝╚══██╔══╝██╔════╝██╔══██╗██╔══██╗██╔══██╗██╔════╝
 ██║   ██║█████╗     ██║   ██║     ███████║██████╔╝██║  ██║███████╗
 ╚██╗ ██╔╝██╔══╝     ██║   ██║     ██╔══██║██╔══██╗██║  ██║╚════██║
  ╚████╔╝ ███████╗   ██║   ╚██████╗██║  ██║██║  ██║██████╔╝███████║
   ╚═══╝  ╚══════╝   ╚═╝    ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚══════╝`

const bannerCompact = "V E T · C A R D S"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 70

// RenderBanner returns the VetCards banner in the given color.
// Uses a compact fallback for terminals narrower than bannerMinWidth.
func RenderBanner(width int, c color.Color) string {
	style := lipgloss.NewStyle().
		Foreground(c).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

// fadeRamp steps from the border color up to the primary color.
var fadeRamp = []color.Color{
	theme.Border,
	lipgloss.Color("#475569"),
	theme.TextDim,
	lipgloss.Color("#38BDF8"),
	theme.Primary,
}
