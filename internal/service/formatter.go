package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/models"
)

const (
	recordTemplate = "Name - %s\nRoll No - %s\nSection - %s\nHostel - %s"
	blockTemplate  = "Name - %s\nRoll No - %s\nHostel - %s\n"

	// blockSeparator is placed between blocks of one chunk. Each block ends
	// with a newline already, so blocks end up separated by a blank line.
	blockSeparator = "\n"
)

// Formatter renders roster records as outbound message text.
type Formatter struct {
	chunkSize int
}

// NewFormatter constructs a Formatter that groups at most chunkSize listing
// blocks per message. A non-positive chunkSize falls back to
// [config.DefaultChunkSize].
func NewFormatter(chunkSize int) *Formatter {
	if chunkSize <= 0 {
		chunkSize = config.DefaultChunkSize
	}

	return &Formatter{chunkSize: chunkSize}
}

// ChunkSize returns the effective number of blocks per message.
func (f *Formatter) ChunkSize() int {
	return f.chunkSize
}

// FormatRecord renders the four-line detail view of a single record.
func (f *Formatter) FormatRecord(r models.Record) string {
	return fmt.Sprintf(recordTemplate, r.Name, r.ID, r.Category, r.Auxiliary)
}

// FormatBlock renders the three-line listing entry of a record, including
// its trailing newline.
func (f *Formatter) FormatBlock(r models.Record) string {
	return fmt.Sprintf(blockTemplate, r.Name, r.ID, r.Auxiliary)
}

// FormatListing renders records as blocks and groups them into messages of
// at most ChunkSize blocks each, keeping record order.
func (f *Formatter) FormatListing(records []models.Record) []string {
	blocks := make([]string, 0, len(records))
	for _, r := range records {
		blocks = append(blocks, f.FormatBlock(r))
	}

	chunks := Chunk(blocks, f.chunkSize)

	messages := make([]string, 0, len(chunks))
	for _, c := range chunks {
		messages = append(messages, strings.Join(c, blockSeparator))
	}

	return messages
}

// Chunk splits items into consecutive groups of size elements; the last
// group may be shorter. Order is kept and nothing is dropped or duplicated.
// A non-positive size falls back to [config.DefaultChunkSize].
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = config.DefaultChunkSize
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end:end])
	}

	return chunks
}
