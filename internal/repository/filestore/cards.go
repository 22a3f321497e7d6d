package filestore

import (
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// CardWriter writes generated boarding card files to the boarding_cards
// folder, one file per allocated seat with the card format as extension.
type CardWriter struct {
	fsys billy.Filesystem
}

func NewCardWriter(fsys billy.Filesystem) *CardWriter {
	return &CardWriter{fsys: fsys}
}

func cardFileName(number, seatNumber string, departs time.Time, format string) string {
	return sanitizeName(number, seatNumber, departs.Format("20060102")) + "." + format
}

// Write stores the card content for one seat, replacing any previous file.
func (w *CardWriter) Write(
	number string,
	seatNumber string,
	departs time.Time,
	format string,
	content []byte,
) error {
	const op = "filestore.CardWriter.Write"

	if err := w.fsys.MkdirAll(boardingCardsFolder, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	path := w.fsys.Join(boardingCardsFolder, cardFileName(number, seatNumber, departs, format))
	if err := util.WriteFile(w.fsys, path, content, 0o644); err != nil {
		return fmt.Errorf("%s: write %s: %w", op, path, err)
	}

	return nil
}
