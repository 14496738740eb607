package components

const (
	DateLayout = "2006-01-02 15:04" // Date column and preview header

	// Fixed table column widths; Quote takes what is left
	authorColumnWidth   = 20
	categoryColumnWidth = 14
	sourceColumnWidth   = 20
	dateColumnWidth     = 16
	minQuoteColumnWidth = 20
	tableCellPadding    = 2 // bubbles table pads each cell by one on both sides

	unknownAuthor = "Unknown"
	noSource      = "No source"
)
