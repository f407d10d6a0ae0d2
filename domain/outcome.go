// SPDX-License-Identifier: GPL-3.0-or-later
package domain

type Class string

const (
	ClassSpam = Class("spam")
	ClassHam  = Class("ham")
)

// Outcome holds both log-odds scores of one document.
type Outcome struct {
	SpamScore float64
	HamScore  float64
}

// IsSpam only holds on a strict win of the spam score, ties are ham.
func (o Outcome) IsSpam() bool {
	return o.SpamScore > o.HamScore
}

func (o Outcome) Class() Class {
	if o.IsSpam() {
		return ClassSpam
	}
	return ClassHam
}

type Tally struct {
	Spam int
	Ham  int
}

func (t *Tally) Add(o Outcome) {
	if o.IsSpam() {
		t.Spam++
	} else {
		t.Ham++
	}
}

func (t Tally) Total() int {
	return t.Spam + t.Ham
}

type Result struct {
	Document string
	Subject  string
	Outcome  Outcome
}
