package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/blastrunner/internal/core/domain"
)

func TestMakeBlastDBInvocation(t *testing.T) {
	inv := domain.MakeBlastDBInvocation("makeblastdb", "in.fasta", domain.DBTypeProtein, "db/prefix")

	assert.Equal(t, "makeblastdb", inv.Name)
	assert.Equal(t, []string{"-in", "in.fasta", "-dbtype", "prot", "-out", "db/prefix"}, inv.Args)
	assert.Equal(t, "makeblastdb -in in.fasta -dbtype prot -out db/prefix", inv.String())
}

func TestBlastpInvocation(t *testing.T) {
	inv := domain.BlastpInvocation("/opt/blastp", "q.fasta", "db/prefix", "out.tsv", []string{"-evalue", "1e-5"})

	assert.Equal(t, "/opt/blastp", inv.Name)
	assert.Equal(t,
		[]string{"-query", "q.fasta", "-db", "db/prefix", "-out", "out.tsv", "-outfmt", "6", "-evalue", "1e-5"},
		inv.Args,
	)
}

func TestToolResult_Succeeded(t *testing.T) {
	var nilResult *domain.ToolResult
	assert.False(t, nilResult.Succeeded())
	assert.True(t, (&domain.ToolResult{ExitCode: 0}).Succeeded())
	assert.False(t, (&domain.ToolResult{ExitCode: 2}).Succeeded())
}
