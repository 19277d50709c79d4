// Package export renders registrations for the organisers.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gdg-garage/wedding-rsvp/internal/models"
)

const ContentType = "text/csv; charset=utf-8"

// WriteCSV writes one header row followed by one row per registration, in
// the order given.
func WriteCSV(w io.Writer, regs []models.Registration) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i := range regs {
		if err := cw.Write(Row(&regs[i])); err != nil {
			return fmt.Errorf("writing csv row %s: %w", regs[i].RSVPCode, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func CSV(regs []models.Registration) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, regs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
