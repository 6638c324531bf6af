package fastaio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorReadsRecordsAndUppercasesAndMapsAmbiguous(t *testing.T) {
	input := ">chr1 test\nttaggttagg\nYYYacgt\n>chr2\nACGT\n"
	it := NewIterator(strings.NewReader(input))

	require.True(t, it.Next())
	r1 := it.Record()
	assert.Equal(t, "chr1", r1.ID)
	assert.Equal(t, "TTAGGTTAGGNNNACGT", string(r1.Seq))

	require.True(t, it.Next())
	r2 := it.Record()
	assert.Equal(t, "chr2", r2.ID)
	assert.Equal(t, "ACGT", string(r2.Seq))

	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}
