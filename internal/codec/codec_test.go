package codec

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"life-torus/internal/core"
	pcore "life-torus/pkg/core"
)

func TestEncodeFormat(t *testing.T) {
	g := core.NewGrid(2, 3)
	g.Set(0, 0, core.Alive)
	g.Set(1, 2, core.Alive)

	require.Equal(t, "[x][ ][ ]\r\n[ ][ ][x]", string(Encode(g)))
	require.Equal(t, "[ ]", string(Encode(core.NewGrid(1, 1))))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))
	require.Equal(t, Encode(g), buf.Bytes())
}

func TestRoundTrip(t *testing.T) {
	rng := pcore.NewRNG(42)
	for _, dims := range [][2]int{{1, 1}, {1, 9}, {9, 1}, {2, 2}, {3, 5}, {10, 10}, {23, 17}} {
		for _, density := range []float64{0, 0.3, 1} {
			g := core.NewGrid(dims[0], dims[1])
			pcore.FillDensity(rng, g.Cells(), density)

			got, err := Decode(bytes.NewReader(Encode(g)))
			require.NoError(t, err)
			require.True(t, g.Equal(got), "round trip of %v at density %.1f", dims, density)
		}
	}
}

func TestDecodeRows(t *testing.T) {
	rows, err := DecodeRows(strings.NewReader("[x][ ]\r\n[ ]"))
	require.NoError(t, err)
	require.Equal(t, [][]core.Cell{{core.Alive, core.Dead}, {core.Dead}}, rows)
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{name: "partial trailing token", in: "[x][ ][x", want: ErrMalformedEncoding},
		{name: "unknown token", in: "[x][o]", want: ErrMalformedEncoding},
		{name: "bare line feed", in: "[x]\n[ ]", want: ErrMalformedEncoding},
		{name: "trailing separator", in: "[x][ ]\r\n", want: core.ErrMalformedMap},
		{name: "ragged rows", in: "[x][ ]\r\n[ ]", want: core.ErrMalformedMap},
		{name: "empty", in: "", want: core.ErrMalformedMap},
		{name: "uppercase alive", in: "[X]", want: ErrMalformedEncoding},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Decode(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestDecodeReportsReadFailure(t *testing.T) {
	_, err := Decode(iotest.ErrReader(errors.New("disk gone")))
	require.ErrorIs(t, err, ErrUnreadableSource)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")

	g := core.NewGrid(4, 6)
	g.Set(0, 5, core.Alive)
	g.Set(3, 0, core.Alive)
	require.NoError(t, Save(path, g))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, Encode(g), raw)

	got, err := Load(path)
	require.NoError(t, err)
	require.True(t, g.Equal(got))
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, ErrUnreadableSource)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("[x][ ]\r\n[x]"), 0o644))
	_, err = Load(bad)
	require.ErrorIs(t, err, core.ErrMalformedMap)

	g, err := LoadOrDefault(bad)
	require.Error(t, err)
	require.True(t, g.Equal(core.DefaultGrid()))
}

func TestSaveFailure(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "no", "such", "dir", "map.txt"), core.NewGrid(2, 2))
	require.ErrorIs(t, err, ErrUnwritableTarget)
}
