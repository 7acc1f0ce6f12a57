// Package fasta reads and writes FASTA files as domain.SequenceSet values.
//
// Every line is trimmed before it is interpreted. A line starting with '>'
// opens a record whose identifier is the rest of that line; every following
// non-header line is appended to the record's residues. Residues are written
// back on a single line, without wrapping.
package fasta

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.trai.ch/blastrunner/internal/core/domain"
	"go.trai.ch/zerr"
)

// Decode parses FASTA text from r.
func Decode(r io.Reader) (*domain.SequenceSet, error) {
	return decode(r, "")
}

func decode(r io.Reader, source string) (*domain.SequenceSet, error) {
	set := domain.NewSequenceSet()
	br := bufio.NewReader(r)

	var (
		current string
		lineNo  int
	)

	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, errors.Join(domain.ErrSequenceFileRead, withSource(zerr.Wrap(readErr, "read failed"), source))
		}
		if raw == "" && readErr != nil {
			break
		}
		lineNo++

		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, ">"):
			current = line[1:]
			if err := set.Add(current, ""); err != nil {
				return nil, errors.Join(err, withSource(zerr.With(zerr.New("bad header"), "line", lineNo), source))
			}
		case line == "":
			// Blank lines carry no residues.
		case current == "":
			return nil, errors.Join(
				domain.ErrMissingHeader,
				withSource(zerr.With(zerr.New("content line without header"), "line", lineNo), source),
			)
		default:
			if err := set.Append(current, line); err != nil {
				return nil, errors.Join(err, withSource(zerr.With(zerr.New("bad sequence line"), "line", lineNo), source))
			}
		}

		if readErr != nil {
			break
		}
	}

	return set, nil
}

func withSource(err error, source string) error {
	if source == "" {
		return err
	}
	return zerr.With(err, "path", source)
}

// Encode writes set to w as ">id\nresidues\n" per record in insertion order.
func Encode(w io.Writer, set *domain.SequenceSet) error {
	bw := bufio.NewWriter(w)
	for id, residues := range set.All() {
		if _, err := bw.WriteString(">" + id + "\n" + residues + "\n"); err != nil {
			return zerr.Wrap(err, "failed to write record")
		}
	}
	if err := bw.Flush(); err != nil {
		return zerr.Wrap(err, "failed to flush records")
	}
	return nil
}
