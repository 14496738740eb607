package models

// ============================================================================
// DISPLAY CONSTANTS
// ============================================================================

// DefaultPreviewLength is the number of runes shown in the quote list before truncation
const DefaultPreviewLength = 150

// PreviewEllipsis is appended to truncated quote previews
const PreviewEllipsis = "..."

// ============================================================================
// EXPORT CONSTANTS
// ============================================================================

// ExportTimeLayout is the layout used for the Created At column in exports
const ExportTimeLayout = "2006-01-02 15:04:05"

// ExportHeader is the header row written at the top of every export
var ExportHeader = []string{"ID", "Quote", "Author", "Category", "Source", "Created At"}
