package records

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []float64
		wantErr string
	}{
		{name: "newline separated", input: "3\n1.5\n-2\n3e2\n", want: []float64{1.5, -2, 300}},
		{name: "mixed whitespace", input: "  4 1\t2\n\n3   4", want: []float64{1, 2, 3, 4}},
		{name: "extra values ignored", input: "2\n1\n2\n3\n", want: []float64{1, 2}},
		{name: "empty list", input: "0\n", want: []float64{}},
		{name: "no count", input: "", wantErr: "reading count: unexpected EOF"},
		{name: "bad count", input: "x\n", wantErr: `parsing count "x"`},
		{name: "negative count", input: "-1\n", wantErr: `parsing count "-1"`},
		{name: "short input", input: "3\n1\n2\n", wantErr: "records: fewer values than announced: got 2 of 3"},
		{name: "huge count", input: "2147483647 1 2", wantErr: "records: fewer values than announced: got 2 of 2147483647"},
		{name: "bad value", input: "2\n1\nabc\n", wantErr: "parsing value 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortInputIs(t *testing.T) {
	_, err := Read(strings.NewReader("5 1 2"))
	assert.ErrorIs(t, err, ErrShortInput)

	_, err = Read(strings.NewReader("2147483647 1 2"))
	assert.ErrorIs(t, err, ErrShortInput)
}

func TestReadBeyondPrealloc(t *testing.T) {
	n := maxPrealloc + 3
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", n)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}
	got, err := Read(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Len(t, got, n)
	assert.Equal(t, float64(n-1), got[n-1])
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []float64{1, 2.5, -3.1234567, 1e6}))
	assert.Equal(t, "1.000000\n2.500000\n-3.123457\n1000000.000000\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, nil))
	assert.Empty(t, buf.String())
}
