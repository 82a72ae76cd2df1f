// Package extract turns uploaded file bytes into document text.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

const (
	TypeText = "Text"
	TypePDF  = "PDF"
)

// ErrDecode is matched by every *DecodeError.
var ErrDecode = errors.New("decode error")

// DecodeError reports that an upload could not be turned into text.
type DecodeError struct {
	Filename string
	Reason   string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Parser extracts text from one family of file formats.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte) (string, error)
	FileType() string
}

var registry []Parser

// Register adds a parser. Parsers are consulted in registration order.
func Register(p Parser) {
	registry = append(registry, p)
}

func init() {
	Register(pdfParser{})
	Register(textParser{})
}

// Extract selects a parser by the filename extension and returns the text
// along with the file type label. Files with an unknown extension are accepted
// when their bytes are valid UTF-8.
func Extract(filename string, content []byte) (string, string, error) {
	for _, p := range registry {
		if !p.CanParse(filename) {
			continue
		}
		text, err := p.Parse(content)
		if err != nil {
			return "", "", &DecodeError{Filename: filename, Reason: "Error processing file", Err: err}
		}
		return text, p.FileType(), nil
	}
	if !utf8.Valid(content) {
		ext := strings.ToLower(filepath.Ext(filename))
		return "", "", &DecodeError{
			Filename: filename,
			Reason: fmt.Sprintf("Unsupported file type: %s (detected %s). Please upload .txt or .pdf files.",
				ext, mimetype.Detect(content).String()),
		}
	}
	return string(content), TypeText, nil
}

type textParser struct{}

func (textParser) CanParse(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		return true
	}
	return false
}

func (textParser) Parse(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", fmt.Errorf("content is not valid utf-8")
	}
	return string(content), nil
}

func (textParser) FileType() string { return TypeText }
