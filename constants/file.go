package constants

import "strings"

// Spreadsheet and scan formats accepted for upload. Anything else is rejected
// at ingest time.
var AllowedExtensions = map[string]struct{}{
	"xlsx": {},
	"xls":  {},
	"csv":  {},
	"pdf":  {},
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

// OCRMimeTypes are the only content types the table-detection collaborator
// accepts. The adapter fails fast on anything else.
var OCRMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"image/png":       {},
	"image/jpeg":      {},
}

var extToMime = map[string]string{
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xls":  "application/vnd.ms-excel",
	"csv":  "text/csv",
	"pdf":  "application/pdf",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MimeForExt maps a normalized extension to its content type, or "".
func MimeForExt(ext string) string {
	return extToMime[NormalizeExt(ext)]
}

// IsSpreadsheetExt reports whether the extension is machine-readable without
// OCR (the preferred extraction path).
func IsSpreadsheetExt(ext string) bool {
	switch NormalizeExt(ext) {
	case "xlsx", "xls", "csv":
		return true
	}
	return false
}

// IsSpreadsheetMime is IsSpreadsheetExt for content types.
func IsSpreadsheetMime(mimeType string) bool {
	switch mimeType {
	case extToMime["xlsx"], extToMime["xls"], extToMime["csv"]:
		return true
	}
	return false
}

// IsTextualMime reports whether a content type is safe to excerpt as text
// for classification.
func IsTextualMime(mimeType string) bool {
	return mimeType == extToMime["csv"] || strings.HasPrefix(mimeType, "text/")
}
