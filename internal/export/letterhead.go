package export

// Institutional letterhead printed on every exported document.
const (
	LetterheadLine1 = "PEMERINTAH KOTA PALU"
	LetterheadLine2 = "DINAS LINGKUNGAN HIDUP"
	LetterheadLine3 = "KOTA PALU"
	LetterheadLine4 = "Jl. Pipit, Tanamodindi, Kec. Palu Selatan, Kota Palu, Sulawesi Tengah 94111"
)

// Placeholder is rendered for every empty cell value.
const Placeholder = "-"

// DefaultLogoPath is where the deployment drops the municipal logo used on
// PDF letterheads.
const DefaultLogoPath = "./assets/logo-kota-palu.png"
