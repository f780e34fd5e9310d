/*
Copyright © 2024 the DWCPN authors.
This file is part of DWCPN.

DWCPN is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DWCPN is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DWCPN.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package grid holds the fixed wavelength, depth and time grids shared by
// every stage of the primary production model, together with the
// interpolation helpers used to move spectra between grids.
package grid

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

const (
	// WLCount is the number of wavelengths in the working spectral grid.
	WLCount = 61

	// DeltaLambda is the wavelength step of the working grid [nm].
	DeltaLambda = 5.0

	// WLStart is the first wavelength of the working grid [nm].
	WLStart = 400.0

	// DepthCount is the number of samples in a depth profile.
	DepthCount = 501

	// DepthStep is the spacing between depth samples [m].
	DepthStep = 0.5

	// Timesteps is the number of samples between the 80° zenith crossing
	// and solar noon.
	Timesteps = 24
)

// Wavelengths holds the working wavelength grid [nm], 400–700 nm.
var Wavelengths = func() (wl [WLCount]float64) {
	for i := range wl {
		wl[i] = WLStart + DeltaLambda*float64(i)
	}
	return
}()

// WaterAbsorption is the absorption coefficient of pure seawater [m⁻¹]
// at each of the Wavelengths (Pope and Fry, 1997).
var WaterAbsorption = [WLCount]float64{
	0.00663, 0.00530, 0.00473, 0.00444, 0.00454, 0.00478, 0.00495, 0.00530,
	0.00635, 0.00751, 0.00922, 0.00962, 0.00979, 0.01011, 0.01060, 0.01140,
	0.01270, 0.01360, 0.01500, 0.01730, 0.02040, 0.02560, 0.03250, 0.03960,
	0.04090, 0.04170, 0.04340, 0.04520, 0.04740, 0.05110, 0.05650, 0.05960,
	0.06190, 0.06420, 0.06950, 0.07720, 0.08960, 0.11000, 0.13510, 0.16720,
	0.22240, 0.25770, 0.26440, 0.26780, 0.27550, 0.28340, 0.29160, 0.30120,
	0.31080, 0.32500, 0.34000, 0.37100, 0.41000, 0.42900, 0.43900, 0.44800,
	0.46500, 0.48600, 0.51600, 0.55900, 0.62400,
}

// Depths returns the depth [m] of every sample in a depth profile.
func Depths() (d [DepthCount]float64) {
	for i := range d {
		d[i] = DepthStep * float64(i)
	}
	return
}

// DepthIndex returns the index of the deepest sample that lies at or
// above depth z [m].
func DepthIndex(z float64) int {
	if z <= 0 {
		return 0
	}
	i := int(z / DepthStep)
	if i > DepthCount-1 {
		return DepthCount - 1
	}
	return i
}

// Interpolator performs piecewise linear interpolation over a fixed set
// of points. Values outside the range of the points take the value of
// the nearest end point.
type Interpolator struct {
	pl     interp.PiecewiseLinear
	x0, x1 float64
	y0, y1 float64
}

// NewInterpolator fits an Interpolator to xs and ys. xs must be strictly
// increasing and the same length as ys.
func NewInterpolator(xs, ys []float64) (*Interpolator, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("grid: interpolation x and y lengths differ: %d != %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("grid: need at least 2 points for interpolation, have %d", len(xs))
	}
	p := new(Interpolator)
	if err := p.pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("grid: %v", err)
	}
	p.x0, p.x1 = xs[0], xs[len(xs)-1]
	p.y0, p.y1 = ys[0], ys[len(ys)-1]
	return p, nil
}

// At returns the interpolated value at x.
func (p *Interpolator) At(x float64) float64 {
	switch {
	case x <= p.x0:
		return p.y0
	case x >= p.x1:
		return p.y1
	}
	return p.pl.Predict(x)
}

// Interp interpolates a single value at x. It panics if xs and ys
// are not valid interpolation points. It is intended for use with the
// package-level lookup tables, which are known to be valid.
func Interp(xs, ys []float64, x float64) float64 {
	p, err := NewInterpolator(xs, ys)
	if err != nil {
		panic(err)
	}
	return p.At(x)
}

// ToWavelengths interpolates a spectrum defined at wavelengths xs onto
// the working wavelength grid.
func ToWavelengths(xs, ys []float64) ([WLCount]float64, error) {
	var o [WLCount]float64
	p, err := NewInterpolator(xs, ys)
	if err != nil {
		return o, err
	}
	for i, wl := range Wavelengths {
		o[i] = p.At(wl)
	}
	return o, nil
}
