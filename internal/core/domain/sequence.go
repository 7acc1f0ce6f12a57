package domain

import (
	"errors"
	"iter"
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// SequenceSet is an insertion-ordered mapping from sequence identifier to residues.
// The zero value is not usable; create sets with NewSequenceSet.
type SequenceSet struct {
	order []string
	byID  map[string]string
}

// NewSequenceSet creates an empty SequenceSet.
func NewSequenceSet() *SequenceSet {
	return &SequenceSet{
		byID: make(map[string]string),
	}
}

// Add inserts a new record. Identifiers must be non-empty and unique within the set.
// Both fields must survive a FASTA write and read unchanged: no line breaks, no
// trailing whitespace in the identifier, no surrounding whitespace or leading '>'
// in the residues.
func (s *SequenceSet) Add(id, residues string) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	if strings.ContainsAny(id, "\r\n") || strings.TrimRightFunc(id, unicode.IsSpace) != id {
		return errors.Join(ErrMalformedRecord, zerr.With(zerr.New("identifier not representable"), "id", id))
	}
	if err := checkResidues(id, residues); err != nil {
		return err
	}
	if _, ok := s.byID[id]; ok {
		return errors.Join(ErrDuplicateSequenceID, zerr.With(zerr.New("identifier already present"), "id", id))
	}
	s.order = append(s.order, id)
	s.byID[id] = residues
	return nil
}

// Append concatenates residues onto an existing record.
// It is a no-op when the identifier is unknown.
func (s *SequenceSet) Append(id, residues string) error {
	if _, ok := s.byID[id]; !ok {
		return nil
	}
	if err := checkResidues(id, residues); err != nil {
		return err
	}
	s.byID[id] += residues
	return nil
}

func checkResidues(id, residues string) error {
	if strings.ContainsAny(residues, "\r\n") ||
		strings.TrimSpace(residues) != residues ||
		strings.HasPrefix(residues, ">") {
		return errors.Join(ErrMalformedRecord, zerr.With(zerr.New("residues not representable"), "id", id))
	}
	return nil
}

// Get returns the residues stored for id.
func (s *SequenceSet) Get(id string) (string, bool) {
	residues, ok := s.byID[id]
	return residues, ok
}

// Has reports whether id is present.
func (s *SequenceSet) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of records.
func (s *SequenceSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// IsEmpty reports whether the set holds no records.
func (s *SequenceSet) IsEmpty() bool {
	return s.Len() == 0
}

// IDs returns a copy of the identifiers in insertion order.
func (s *SequenceSet) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// All yields every (identifier, residues) pair in insertion order.
func (s *SequenceSet) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if s == nil {
			return
		}
		for _, id := range s.order {
			if !yield(id, s.byID[id]) {
				return
			}
		}
	}
}

// Equal reports whether both sets hold the same identifiers mapped to the same residues.
// Insertion order is not compared.
func (s *SequenceSet) Equal(other *SequenceSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id, residues := range s.All() {
		got, ok := other.Get(id)
		if !ok || got != residues {
			return false
		}
	}
	return true
}

// ToMap returns the set as a plain map. Mostly useful in tests and for rendering.
func (s *SequenceSet) ToMap() map[string]string {
	m := make(map[string]string, s.Len())
	for id, residues := range s.All() {
		m[id] = residues
	}
	return m
}
