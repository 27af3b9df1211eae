package layout

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeometry_OverflowIsRangeError(t *testing.T) {
	_, err := ParseGeometry("99999999999999999999x10")
	require.Error(t, err)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		in      string
		want    Geometry
		wantErr bool
	}{
		{"300x200", Geometry{Width: 300, Height: 200}, false},
		{"300x200+10+20", Geometry{300, 200, 10, 20}, false},
		{"300x200-10+20", Geometry{300, 200, -10, 20}, false},
		{"300x200+-10+-20", Geometry{300, 200, -10, -20}, false},
		{"300", Geometry{}, true},
		{"axb", Geometry{}, true},
		{"300x200+10", Geometry{}, true},
		{"99999999999999999999x200", Geometry{}, true},
		{"300x99999999999999999999", Geometry{}, true},
	}
	for _, tt := range tests {
		got, err := ParseGeometry(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseGeometry(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseGeometry(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseGeometry(%q)", tt.in)
	}
}

func TestGeometryString(t *testing.T) {
	assert.Equal(t, "300x200+810+440", Geometry{300, 200, 810, 440}.String())
	assert.Equal(t, "300x200-5+0", Geometry{300, 200, -5, 0}.String())
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name         string
		screenW      int
		screenH      int
		in           Geometry
		wantX, wantY int
	}{
		{"even", 1920, 1080, Geometry{Width: 300, Height: 200, X: 7, Y: 9}, 810, 440},
		{"odd sizes truncate", 1921, 1081, Geometry{Width: 301, Height: 201}, 810, 440},
		{"fills screen", 80, 24, Geometry{Width: 80, Height: 24}, 0, 0},
		{"larger than screen", 80, 24, Geometry{Width: 100, Height: 30}, -10, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Center(tt.screenW, tt.screenH, tt.in)
			assert.Equal(t, tt.in.Width, got.Width)
			assert.Equal(t, tt.in.Height, got.Height)
			assert.Equal(t, tt.wantX, got.X)
			assert.Equal(t, tt.wantY, got.Y)
		})
	}
}

func TestCenterOffset(t *testing.T) {
	x, y := CenterOffset(80, 24, 14, 4)
	assert.Equal(t, 33, x)
	assert.Equal(t, 10, y)

	x, y = CenterOffset(10, 2, 14, 4)
	assert.Zero(t, x)
	assert.Zero(t, y)
}
