package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/precis/internal/ui/theme"
)

const bannerArt = `
██████╗ ██████╗ ███████╗ ██████╗██╗███████╗
██╔══██╗██╔══██╗██╔════╝██╔════╝██║██╔════╝
██████╔╝██████╔╝█████╗  ██║     ██║███████╗
██╔═══╝ ██╔══██╗██╔══╝  ██║     ██║╚════██║
██║     ██║  ██║███████╗╚██████╗██║███████║
╚═╝     ╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝╚══════╝`

const bannerCompact = "P R E C I S"

// bannerMinWidth is the narrowest terminal that fits the block letters.
const bannerMinWidth = 46

// BannerText returns the unstyled banner, or the compact form when narrow
// is set.
func BannerText(narrow bool) string {
	if narrow {
		return bannerCompact
	}
	return bannerArt
}

// RenderBanner returns the PRECIS banner styled in the primary color.
// Uses a compact fallback for terminals narrower than bannerMinWidth.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)
	return style.Render(BannerText(width < bannerMinWidth))
}
