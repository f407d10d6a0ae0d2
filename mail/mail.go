// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	"mime"
	stdmail "net/mail"

	"github.com/emersion/go-message/charset"
)

var subjectDecoder = &mime.WordDecoder{
	CharsetReader: charset.Reader,
}

// Subject returns the decoded Subject header of a raw mail. It is only used for logging and
// result records, tokenization always sees the raw bytes.
func Subject(rawMail []byte) (string, error) {
	msg, err := stdmail.ReadMessage(bytes.NewReader(rawMail))
	if err != nil {
		return "", fmt.Errorf("could not parse mail: %w", err)
	}

	subject, err := subjectDecoder.DecodeHeader(msg.Header.Get("Subject"))
	if err != nil {
		return "", fmt.Errorf("could not decode subject header: %w", err)
	}

	return subject, nil
}

func ShortSubject(subject string) string {
	runes := []rune(subject)
	if len(runes) > 30 {
		subject = string(runes[:30]) + "..."
	}
	return subject
}
