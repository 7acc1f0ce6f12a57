package fasta_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/blastrunner/internal/adapters/fasta"
	"go.trai.ch/blastrunner/internal/core/domain"
)

func TestDecode_Simple(t *testing.T) {
	set, err := fasta.Decode(strings.NewReader(">seq1\nMKV\n>seq2\nLLA\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"seq1", "seq2"}, set.IDs())
	assert.Equal(t, map[string]string{"seq1": "MKV", "seq2": "LLA"}, set.ToMap())
}

func TestDecode_ConcatenatesTrimmedLines(t *testing.T) {
	input := "  >seq1 some description  \n  MKV \n\tLLA\r\n\n>seq2\nAAA"
	set, err := fasta.Decode(strings.NewReader(input))
	require.NoError(t, err)

	got, ok := set.Get("seq1 some description")
	require.True(t, ok)
	assert.Equal(t, "MKVLLA", got)

	got, ok = set.Get("seq2")
	require.True(t, ok)
	assert.Equal(t, "AAA", got, "last line without newline is kept")
}

func TestDecode_HeaderWithoutSequence(t *testing.T) {
	set, err := fasta.Decode(strings.NewReader(">seq1\n>seq2\nMKV\n"))
	require.NoError(t, err)

	got, _ := set.Get("seq1")
	assert.Equal(t, "", got)
	assert.Equal(t, 2, set.Len())
}

func TestDecode_Empty(t *testing.T) {
	set, err := fasta.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, set.IsEmpty())

	set, err = fasta.Decode(strings.NewReader("\n\n  \n"))
	require.NoError(t, err)
	assert.True(t, set.IsEmpty())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"content before header", "MKV\n>seq1\nLLA\n", domain.ErrMissingHeader},
		{"content after blank preamble", "\n\nMKV\n", domain.ErrMissingHeader},
		{"bare header", ">\nMKV\n", domain.ErrEmptyIdentifier},
		{"duplicate identifier", ">seq1\nMKV\n>seq1\nLLA\n", domain.ErrDuplicateSequenceID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fasta.Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestEncode_Golden(t *testing.T) {
	set := domain.NewSequenceSet()
	require.NoError(t, set.Add("seq1", "MKV"))
	require.NoError(t, set.Add("seq2 putative glycoside hydrolase", "LLAWTRE"))
	require.NoError(t, set.Add("empty", ""))

	var buf bytes.Buffer
	require.NoError(t, fasta.Encode(&buf, set))

	g := goldie.New(t)
	g.Assert(t, "encode", buf.Bytes())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]string
	}{
		{"single", [][2]string{{"seq1", "MKV"}}},
		{"several", [][2]string{{"b", "LLA"}, {"a", "MKV"}, {"c", "WWWWWWWWWW"}}},
		{"identifier with spaces", [][2]string{{"sp|P12345|ABC_HUMAN Some protein OS=Homo sapiens", "MKVLAAG"}}},
		{"long sequence", [][2]string{{"long", strings.Repeat("ACDEFGHIKLMNPQRSTVWY", 10000)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := domain.NewSequenceSet()
			for _, p := range tt.pairs {
				require.NoError(t, set.Add(p[0], p[1]))
			}

			var buf bytes.Buffer
			require.NoError(t, fasta.Encode(&buf, set))

			got, err := fasta.Decode(&buf)
			require.NoError(t, err)
			assert.True(t, set.Equal(got))
			assert.Equal(t, set.IDs(), got.IDs())
		})
	}
}
