// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Quote is a piece of text returned by the text-retrieval service together
// with its attribution.
type Quote struct {
	Text        string
	Attribution string
}

// String renders the quote the way it is appended to a note:
//
//	"Stay focused" — Anon
func (q Quote) String() string {
	return "\"" + q.Text + "\" — " + q.Attribution
}
