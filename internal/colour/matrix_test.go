package colour

import (
	"math"
	"testing"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vecApprox(a, b Vec3, tol float64) bool {
	for i := range a {
		if !approx(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func matrixApprox(a, b Matrix3, tol float64) bool {
	for i := range a {
		if !vecApprox(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

var identity3 = diagonal(1, 1, 1)

func TestMatrixInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3
	}{
		{name: "diagonal", m: diagonal(2, 4, 0.5)},
		{name: "bradford", m: bradfordCone},
		{name: "srgb primaries", m: srgbToXYZ},
		{name: "oklab", m: lmsToOKLab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Inverse()
			if !ok {
				t.Fatal("Inverse() reported a singular matrix")
			}
			if got := tt.m.Mul(inv); !matrixApprox(got, identity3, 1e-9) {
				t.Errorf("m·m⁻¹ = %v, want identity", got)
			}
		})
	}
}

func TestMatrixInverseSingular(t *testing.T) {
	m := Matrix3{
		{1, 2, 3},
		{2, 4, 6},
		{0, 1, 1},
	}
	if _, ok := m.Inverse(); ok {
		t.Error("Inverse() of a singular matrix reported ok")
	}
}

func TestSRGBMatricesAreInverse(t *testing.T) {
	if got := srgbToXYZ.Mul(xyzToSRGB); !matrixApprox(got, identity3, 1e-9) {
		t.Errorf("srgbToXYZ·xyzToSRGB = %v, want identity", got)
	}
}

func TestBradfordMatchesFixedMatrices(t *testing.T) {
	if got := BradfordMatrix(D65, D50); !matrixApprox(got, d65ToD50, 1e-5) {
		t.Errorf("BradfordMatrix(D65, D50) = %v, want %v", got, d65ToD50)
	}
	if got := BradfordMatrix(D50, D65); !matrixApprox(got, d50ToD65, 1e-5) {
		t.Errorf("BradfordMatrix(D50, D65) = %v, want %v", got, d50ToD65)
	}
}

func TestAdapt(t *testing.T) {
	tests := []struct {
		name     string
		xyz      Vec3
		src, dst WhitePoint
		want     Vec3
	}{
		{name: "same white", xyz: Vec3{0.2, 0.3, 0.4}, src: D65, dst: D65, want: Vec3{0.2, 0.3, 0.4}},
		{name: "D65 white to D50", xyz: D65.vec(), src: D65, dst: D50, want: D50.vec()},
		{name: "D50 white to D65", xyz: D50.vec(), src: D50, dst: D65, want: D65.vec()},
		{
			name: "illuminant A white to D65",
			xyz:  WhitePointFromXY(0.44757, 0.40745).vec(),
			src:  WhitePointFromXY(0.44757, 0.40745),
			dst:  D65,
			want: D65.vec(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Adapt(tt.xyz, tt.src, tt.dst); !vecApprox(got, tt.want, 1e-4) {
				t.Errorf("Adapt() = %v, want %v", got, tt.want)
			}
		})
	}
}
