package quotation

import "strings"

// ExportFilename nombre de descarga del PDF: quotation_{número o N/A}.pdf.
func ExportFilename(number string) string {
	n := strings.TrimSpace(number)
	if n == "" {
		n = "N/A"
	}
	return "quotation_" + n + ".pdf"
}
