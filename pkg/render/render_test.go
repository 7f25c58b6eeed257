package render

import (
	"bytes"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	squarePoints = []delaunay.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5}}
	squareTris   = delaunay.Triangulate(squarePoints, delaunay.Incremental, nil)
)

func testOptions() Options {
	o := DefaultOptions()
	o.Width, o.Height = 200, 100
	o.Padding = 10
	return o
}

func TestViewport(t *testing.T) {
	v := newViewport(squarePoints, testOptions())
	// 200x100 with padding 10 leaves 180x80, the square is scaled by 8
	assert.Equal(t, 8.0, v.scale)

	x, y := v.toScreen(delaunay.Point{X: 0, Y: 0})
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 90.0, y)

	x, y = v.toScreen(delaunay.Point{X: 10, Y: 10})
	assert.Equal(t, 90.0, x)
	assert.Equal(t, 10.0, y)

	// одна точка не должна давать деление на ноль
	v = newViewport([]delaunay.Point{{X: 3, Y: 3}}, testOptions())
	assert.Equal(t, 1.0, v.scale)
}

func TestImage(t *testing.T) {
	img := Image(squarePoints, squareTris, testOptions())
	assert.Equal(t, image.Rect(0, 0, 200, 100), img.Bounds())

	// нижний левый угол квадрата - красная точка
	r, g, b, _ := img.At(10, 90).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)

	// далеко справа пусто
	r, g, b, _ = img.At(190, 50).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, squarePoints, squareTris, testOptions()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Equal(t, len(squareTris), strings.Count(out, "<polygon"))
	assert.Equal(t, len(squarePoints), strings.Count(out, "<circle"))
	assert.Contains(t, out, "</svg>")
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, squarePoints, squareTris, testOptions()))
	assert.Contains(t, buf.String(), "echarts")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.jpg", "c.svg", "nested/d.html"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(path, squarePoints, squareTris, testOptions()))
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}

	err := Save(filepath.Join(dir, "e.pdf"), squarePoints, squareTris, testOptions())
	assert.EqualError(t, err, `unsupported output format ".pdf"`)
}

func TestSavedPNGDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.png")
	require.NoError(t, Save(path, squarePoints, squareTris, testOptions()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, format, err := image.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 200, img.Bounds().Dx())
}
