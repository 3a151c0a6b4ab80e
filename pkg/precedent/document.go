package precedent

import "errors"

// Document wraps the raw precedent text and its origin.
type Document struct {
	source Source
	text   string
}

// NewDocument constructs a Document wrapper while validating the inputs. An
// empty precedent is rejected here so a missing template fails before any
// generation work starts.
func NewDocument(src Source, text string) (Document, error) {
	if src == nil {
		return Document{}, errors.New("precedent: source is required")
	}
	if len(text) == 0 {
		return Document{}, errors.New("precedent: template text is empty")
	}
	return Document{source: src, text: text}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, text string) Document {
	doc, err := NewDocument(src, text)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Text returns the raw precedent text.
func (d Document) Text() string {
	return d.text
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
