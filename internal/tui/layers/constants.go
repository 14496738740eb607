package layers

const (
	// Modals take 2/3 of the screen width
	ModalWidthNumerator = 2
	ModalWidthDivisor   = 3
	ModalMargin         = 4 // keep the board visible at the edges

	FormMinWidth   = 40
	FormMaxWidth   = 80
	DetailMinWidth = 40
	DetailMaxWidth = 90
	MenuWidth      = 24
	ConfirmWidth   = 50
	HelpWidth      = 56
)
