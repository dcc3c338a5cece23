package postpro

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBin(t *testing.T, fp string, v []float32) {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, binary.Write(buf, binary.LittleEndian, v))
	require.NoError(t, os.WriteFile(fp, buf.Bytes(), 0644))
}

func TestReadBin(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "lai.bin")
	writeBin(t, fp, []float32{0, 0, 1, .5, 2, 1.5, 1, 3})

	a, err := ReadBin(fp, 2)
	require.NoError(t, err)
	require.Len(t, a, 4)
	assert.Equal(t, []float64{1., .5}, a[1])
	assert.Equal(t, []float64{1., 3.}, a[3])

	_, err = ReadBin(fp, 3)
	assert.Error(t, err)
	_, err = ReadBin(filepath.Join(t.TempDir(), "missing.bin"), 2)
	assert.Error(t, err)
}

func TestPeak(t *testing.T) {
	a := [][]float64{{0., 0.}, {1., .5}, {2., 1.5}, {2., 3.}}
	v, day := Peak(a)
	assert.Equal(t, []float64{2., 3.}, v)
	assert.Equal(t, []int{2, 3}, day, "first day of the maximum")

	v, day = Peak(nil)
	assert.Nil(t, v)
	assert.Nil(t, day)
}
