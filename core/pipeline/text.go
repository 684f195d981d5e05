package pipeline

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gen2brain/go-fitz"
)

func extractPDFText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for p := 0; p < doc.NumPage(); p++ {
		text, err := doc.Text(p)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", p, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}
	return strings.Join(strings.Fields(text), " "), nil
}
