package constants

// Tesseract page segmentation modes used by the extraction pipeline.
const (
	// PSMAuto is full automatic page segmentation, used for the whole-page
	// transcript that feeds vendor extraction.
	PSMAuto = 3
	// PSMSingleBlock assumes a single uniform block of text, used for the
	// header, body and summary bands.
	PSMSingleBlock = 6
)
