package clade

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biogo/tidk/internal/tidkerr"
)

const sampleCSV = `Phylum,Order,Family,Species,Telomeric repeat,Notes,Ref
Chordata,Primates,Hominidae,Homo sapiens,TTAGGG,,ref1
Chordata,Primates,Hominidae,Pan troglodytes,TTAGGG,,ref2
Chordata,Lepidoptera,Nymphalidae,Danaus plexippus,TTAGG,,ref3
Chordata,,Orphan,Unknown sp.,AAACCC,dropped,ref4
`

func TestParseDeduplicatesAndDropsEmptyOrder(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"TTAGGG"}, table["Primates"])
	assert.Equal(t, []string{"TTAGG"}, table["Lepidoptera"])
	_, ok := table[""]
	assert.False(t, ok)
}

func TestMotifsUnknownCladeIsDatabaseMissing(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	_, err = table.Motifs("Carnivora")
	require.Error(t, err)
	assert.True(t, tidkerr.Is(err, tidkerr.DatabaseMissing))
}

func TestMotifsKnownClade(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	motifs, err := table.Motifs("Primates")
	require.NoError(t, err)
	assert.Equal(t, []string{"TTAGGG"}, motifs)
}
