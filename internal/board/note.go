// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package board

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-board/internal/utils"
	"github.com/MKhiriev/go-note-board/models"
)

// augmentationSeparator sits between existing content and an appended quote.
const augmentationSeparator = "\n\n"

var (
	ids = utils.NewUUIDGenerator()
	now = time.Now

	randomColor = func() models.Color {
		return models.Palette[rand.IntN(len(models.Palette))]
	}
)

// Note is a single free-floating note on the board.
//
// A Note is not safe for concurrent use; see the package documentation.
type Note struct {
	id        string
	createdAt string

	content string
	pos     models.Position
	color   models.Color
	image   string

	view View
}

// NewNote creates a note from opts. Every zero-valued field gets a default:
// a fresh identifier, empty content, the origin, a random palette colour, the
// current time and no image. A colour outside the palette and non-finite
// coordinates count as unset. NewNote never fails.
func NewNote(opts models.Note) *Note {
	n := &Note{
		id:        opts.ID,
		createdAt: opts.Timestamp,
		content:   opts.Content,
		pos:       models.Position{X: finite(opts.X), Y: finite(opts.Y)},
		color:     opts.Color,
		image:     opts.Image,
	}

	if n.id == "" {
		n.id = ids.Generate()
	}
	if n.createdAt == "" {
		n.createdAt = now().UTC().Format(time.RFC3339Nano)
	}
	if !n.color.Valid() {
		n.color = randomColor()
	}

	return n
}

// ID returns the note identifier.
func (n *Note) ID() string { return n.id }

// Content returns the note text.
func (n *Note) Content() string { return n.content }

// Position returns the top-left corner in board space.
func (n *Note) Position() models.Position { return n.pos }

// Color returns the palette colour.
func (n *Note) Color() models.Color { return n.color }

// CreatedAt returns the raw creation timestamp.
func (n *Note) CreatedAt() string { return n.createdAt }

// Image returns the attached blob reference, or "".
func (n *Note) Image() string { return n.image }

// UpdatePosition moves the note. Both coordinates change together.
func (n *Note) UpdatePosition(x, y float64) {
	n.pos = models.Position{X: x, Y: y}
	n.refresh()
}

// UpdateContent replaces the note text.
func (n *Note) UpdateContent(text string) {
	n.content = text
	n.refresh()
}

// SetImage replaces the attached image. The previous reference is dropped.
func (n *Note) SetImage(blobRef string) {
	n.image = blobRef
	n.refresh()
}

// Serialize returns a snapshot of all note attributes.
func (n *Note) Serialize() models.Note {
	return models.Note{
		ID:        n.id,
		Content:   n.content,
		X:         n.pos.X,
		Y:         n.pos.Y,
		Color:     n.color,
		Timestamp: n.createdAt,
		Image:     n.image,
	}
}

// Attach binds the note to its view, replacing any previous binding.
func (n *Note) Attach(v View) {
	n.view = v
}

// Detach releases the view binding. Later mutations are still applied but
// nobody is notified.
func (n *Note) Detach() {
	n.view = nil
}

// ApplyAugmentation appends text to the content, separated by a blank line,
// or replaces the content entirely when it is empty.
//
// It is safe to call on a note that has already been removed from its
// manager. A manual edit made while the retrieval was in flight is kept as
// the base; an edit made after this call wins.
func (n *Note) ApplyAugmentation(text string) {
	if n.content == "" {
		n.UpdateContent(text)
		return
	}
	n.UpdateContent(n.content + augmentationSeparator + text)
}

// FetchAugmentation retrieves a quote and appends it to the content. It
// blocks for the duration of the retrieval; event-loop callers should use
// [RetrieveAugmentation] off the loop and [Note.ApplyAugmentation] on it.
//
// On failure the content is unchanged and the error wraps
// [ErrRetrievalFailed].
func (n *Note) FetchAugmentation(ctx context.Context, r TextRetriever) (string, error) {
	text, err := RetrieveAugmentation(ctx, r)
	if err != nil {
		return "", err
	}

	n.ApplyAugmentation(text)
	return text, nil
}

// RetrieveAugmentation fetches a quote and formats it for appending. It does
// not touch any note and may run on any goroutine.
func RetrieveAugmentation(ctx context.Context, r TextRetriever) (string, error) {
	q, err := r.Retrieve(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRetrievalFailed, err)
	}
	if strings.TrimSpace(q.Text) == "" {
		return "", fmt.Errorf("%w: empty quote text", ErrRetrievalFailed)
	}

	return q.String(), nil
}

func (n *Note) refresh() {
	if n.view != nil {
		n.view.Refresh(n.Serialize())
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
