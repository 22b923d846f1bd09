package lidar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/seqsense/pcgol/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTxt(t *testing.T) {
	const sample = "% generated by las2txt\n" +
		"% min x y z          0 0 50\n" +
		"% max x y z          16 16 100\n" +
		"1.01 2.02 60.00 \n" +
		"3.40 4.00 70.50 \n"

	cloud, err := DecodeTxt(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, Point{X: 0, Y: 0, Z: 50}, cloud.Min)
	assert.Equal(t, Point{X: 16, Y: 16, Z: 100}, cloud.Max)
	require.Equal(t, 2, cloud.Len())
	assert.Equal(t, Point{X: 1.01, Y: 2.02, Z: 60}, cloud.Points[0])
	assert.Equal(t, Point{X: 3.4, Y: 4, Z: 70.5}, cloud.Points[1])
}

func TestDecodeTxtHeaderless(t *testing.T) {
	// The reference consumer keeps zero bounds when no header is present.
	cloud, err := DecodeTxt(strings.NewReader("1.00 2.00 3.00 \n"))
	require.NoError(t, err)
	assert.Equal(t, Point{}, cloud.Min)
	assert.Equal(t, Point{}, cloud.Max)
	assert.Equal(t, 1, cloud.Len())
}

func TestDecodeTxtMissingFinalNewline(t *testing.T) {
	cloud, err := DecodeTxt(strings.NewReader("1.00 2.00 3.00 \n4.00 5.00 6.00 "))
	require.NoError(t, err)
	assert.Equal(t, 2, cloud.Len())
}

func TestDecodeTxtErrors(t *testing.T) {
	t.Run("short point line", func(t *testing.T) {
		_, err := DecodeTxt(strings.NewReader("1.00 2.00 \n"))
		assert.ErrorIs(t, err, ErrInvalidTxtPoint)
	})

	t.Run("non numeric point", func(t *testing.T) {
		_, err := DecodeTxt(strings.NewReader("a b c\n"))
		assert.ErrorIs(t, err, ErrInvalidTxtPoint)
	})

	t.Run("non numeric header bounds", func(t *testing.T) {
		_, err := DecodeTxt(strings.NewReader("% min x y z          a b c\n"))
		assert.ErrorIs(t, err, ErrInvalidTxtHeader)
	})

	t.Run("unknown header lines are skipped", func(t *testing.T) {
		cloud, err := DecodeTxt(strings.NewReader("% anything goes here\n% min x y\n1.00 2.00 3.00 \n"))
		require.NoError(t, err)
		assert.Equal(t, 1, cloud.Len())
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cloud := &Cloud{
		Min: Point{X: 0, Y: 0, Z: 50},
		Max: Point{X: 2, Y: 2, Z: 100},
		Points: []Point{
			{X: 0.25, Y: 0.75, Z: 55.25},
			{X: 1.5, Y: 1.01, Z: 99.99},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, cloud.Encode(&buf))
	assert.Equal(t, "% min x y z          0 0 50\n"+
		"% max x y z          2 2 100\n"+
		"0.25 0.75 55.25 \n"+
		"1.50 1.01 99.99 \n", buf.String())

	decoded, err := DecodeTxt(&buf)
	require.NoError(t, err)
	assert.Equal(t, cloud, decoded)
}

func TestVec3Accessor(t *testing.T) {
	cloud := &Cloud{Points: []Point{
		{X: 1, Y: 2, Z: 3},
		{X: 4, Y: 0, Z: 5},
	}}

	assert.Equal(t, 2, cloud.Len())
	assert.Equal(t, mat.Vec3{1, 2, 3}, cloud.Vec3At(0))
	assert.Equal(t, mat.Vec3{4, 0, 5}, cloud.Vec3At(1))
}

func TestExtent(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		min, max := (&Cloud{}).Extent()
		assert.Equal(t, mat.Vec3{}, min)
		assert.Equal(t, mat.Vec3{}, max)
	})

	t.Run("folds min and max per axis", func(t *testing.T) {
		cloud := &Cloud{Points: []Point{
			{X: 1, Y: 2, Z: 3},
			{X: 4, Y: 0, Z: 5},
		}}
		min, max := cloud.Extent()
		assert.Equal(t, mat.Vec3{1, 0, 3}, min)
		assert.Equal(t, mat.Vec3{4, 2, 5}, max)
	})
}

func TestCoverageXY(t *testing.T) {
	cloud := &Cloud{Points: []Point{
		{X: 0.5, Y: 0.5, Z: 50},
		{X: 0.6, Y: 0.6, Z: 60},
		{X: 1.5, Y: 0.5, Z: 70},
	}}

	// Two occupied unit cells; the first two points share one.
	assert.InDelta(t, 2.0, cloud.CoverageXY(1), 1e-9)
	// At half-unit cells the shared pair still collapses into one cell.
	assert.InDelta(t, 0.5, cloud.CoverageXY(0.5), 1e-9)
}
