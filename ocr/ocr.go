package ocr

import (
	"fmt"
	"log"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// DefaultPSM matches Tesseract's "assume a single uniform block of text".
const DefaultPSM = 6

// Recognize runs Tesseract over PNG image data and returns the raw text.
// langs is a joined tag set like "eng+ara"; psm is the page segmentation
// mode. Empty recognized text is a valid result, not an error.
func Recognize(imageData []byte, langs string, psm int) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(splitLangs(langs)...); err != nil {
		return "", fmt.Errorf("failed to set OCR language %q: %v", langs, err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(psm)); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode %d: %v", psm, err)
	}
	if err := client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %v", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %v", err)
	}
	log.Printf("OCR recognized %d characters (langs=%s psm=%d)", len(text), langs, psm)
	return strings.TrimSpace(text), nil
}

// splitLangs turns "eng+ara" into {"eng", "ara"}, dropping empty tags.
func splitLangs(langs string) []string {
	if langs == "" {
		return []string{"eng"}
	}
	var out []string
	for _, tag := range strings.Split(langs, "+") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"eng"}
	}
	return out
}
