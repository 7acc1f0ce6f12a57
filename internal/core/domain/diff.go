package domain

// SequenceDiff describes how an input set differs from the cached snapshot.
type SequenceDiff struct {
	// New holds records whose identifier is absent from the snapshot.
	New *SequenceSet
	// Removed holds snapshot records whose identifier is absent from the input.
	Removed *SequenceSet
	// Changed holds input records present in the snapshot under the same identifier
	// but with different residues.
	Changed *SequenceSet
}

// DiffSequences compares input against snapshot.
// New and Removed are pure set differences by identifier; Changed compares content.
// A nil snapshot is treated as empty.
func DiffSequences(input, snapshot *SequenceSet) SequenceDiff {
	if snapshot == nil {
		snapshot = NewSequenceSet()
	}
	if input == nil {
		input = NewSequenceSet()
	}

	diff := SequenceDiff{
		New:     NewSequenceSet(),
		Removed: NewSequenceSet(),
		Changed: NewSequenceSet(),
	}

	for id, residues := range input.All() {
		cached, ok := snapshot.Get(id)
		switch {
		case !ok:
			_ = diff.New.Add(id, residues)
		case cached != residues:
			_ = diff.Changed.Add(id, residues)
		}
	}

	for id, residues := range snapshot.All() {
		if !input.Has(id) {
			_ = diff.Removed.Add(id, residues)
		}
	}

	return diff
}

// IsEmpty reports whether no identifier was added or removed.
// Content changes are not considered; see HasContentChanges.
func (d SequenceDiff) IsEmpty() bool {
	return d.New.IsEmpty() && d.Removed.IsEmpty()
}

// HasContentChanges reports whether any identifier kept its name but changed residues.
func (d SequenceDiff) HasContentChanges() bool {
	return !d.Changed.IsEmpty()
}
