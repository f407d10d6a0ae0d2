// SPDX-License-Identifier: GPL-3.0-or-later
package domain

// Document is one unit of text handed to training or classification.
type Document struct {
	// Id identifies the document inside its source, a file path or folder/uid.
	Id      string
	Subject string
	Raw     []byte
}

type DocumentSource interface {
	// Name is used in logs and result records.
	Name() string
	// Walk calls fn once per document. An error returned by fn aborts the walk and is
	// returned unchanged.
	Walk(fn func(doc *Document) error) error
}
