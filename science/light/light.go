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

// Package light propagates spectral downwelling irradiance through the
// water column and accumulates the photosynthetically usable light at
// each depth.
package light

import (
	"errors"
	"fmt"
	"math"

	"github.com/spatialmodel/dwcpn/grid"
)

const (
	// refractiveIndex of seawater relative to air.
	refractiveIndex = 1.333

	// diffuseMuD is the mean cosine of the diffuse beam just below the
	// surface.
	diffuseMuD = 0.831

	// index440 is the working wavelength index of 440 nm, where yellow
	// substance absorption is referenced to phytoplankton absorption.
	index440 = int((440 - grid.WLStart) / grid.DeltaLambda)
)

// ErrNonMonotonic is returned when PAR increases with depth.
var ErrNonMonotonic = errors.New("light: PAR increases with depth")

// Water holds the optical properties of the water itself: yellow substance
// and pure seawater. The slices are indexed by working wavelength.
type Water struct {
	// YelSub is the ratio of yellow substance absorption at 440 nm to
	// phytoplankton absorption at 440 nm.
	YelSub float64

	// AY is the spectral shape of yellow substance absorption.
	AY []float64

	// BBR is the backscattering coefficient of pure seawater [m⁻¹].
	BBR []float64

	// BW is the scattering coefficient of pure seawater [m⁻¹].
	BW []float64
}

// DefaultWater returns Water with the default seawater optics.
func DefaultWater(yelSub float64) Water {
	return Water{
		YelSub: yelSub,
		AY:     YellowSubstanceAbsorption(),
		BBR:    BackscatterRatio(),
		BW:     PureWaterScattering(),
	}
}

func (w Water) check() error {
	for _, s := range []struct {
		name string
		v    []float64
	}{{"AY", w.AY}, {"BBR", w.BBR}, {"BW", w.BW}} {
		if len(s.v) != grid.WLCount {
			return fmt.Errorf("light: %s has %d values; want %d", s.name, len(s.v), grid.WLCount)
		}
	}
	return nil
}

// InitMuDAndIZ returns the mean cosine of the downwelling light field and
// the total irradiance just below the surface at each wavelength, given
// the direct and diffuse surface components and the solar zenith angle
// [radians].
func InitMuDAndIZ(direct, diffuse [grid.WLCount]float64, zenith float64) (muD, iz [grid.WLCount]float64) {
	zw := math.Asin(math.Sin(zenith) / refractiveIndex)
	cosZW := math.Cos(zw)
	for l := range iz {
		iz[l] = direct[l] + diffuse[l]
		if iz[l] == 0 {
			// No light; use the direct-beam cosine so that k stays finite.
			muD[l] = cosZW
			continue
		}
		muD[l] = (direct[l]*cosZW + diffuse[l]*diffuseMuD) / iz[l]
	}
	return
}

// Decay attenuates iz in place over one depth step for the given
// chlorophyll concentration. It returns the light absorbed by
// phytoplankton weighted by the photosynthetic efficiency alphaB
// (iAlpha) and the PAR at the top of the step. ok is false when chl
// results in zero phytoplankton absorption; iz is left unchanged in that
// case.
func Decay(iz *[grid.WLCount]float64, muD [grid.WLCount]float64, chl, alphaB float64, w Water) (iAlpha, par float64, ok bool) {
	ac, mean := Absorption(chl)
	if mean == 0 {
		return 0, 0, false
	}
	ay440 := w.YelSub * ac[index440]

	power := -math.Log10(chl)
	bc660 := 0.407 * math.Pow(chl, 0.795)
	bbtilda := math.Min(math.Max((0.78+0.42*power)*0.01, 0.0005), 0.01)

	for l := range iz {
		par += iz[l]
	}
	par *= grid.DeltaLambda

	for l, wl := range grid.Wavelengths {
		a := grid.WaterAbsorption[l] + ac[l] + ay440*w.AY[l] + 2*w.BBR[l]
		bc := math.Max(bc660*math.Pow(660/wl, power), 0)
		bb := bc*bbtilda + w.BW[l]*0.5
		k := (a + bb) / muD[l]

		x := alphaB * ac[l] * 6022 / (2.77 * 36 * mean)
		iAlpha += x * grid.DeltaLambda * iz[l] / muD[l]

		iz[l] *= math.Exp(-k * grid.DepthStep)
	}
	return iAlpha, par, true
}

// DecayProfile propagates the surface irradiance given by direct and
// diffuse [W m⁻² nm⁻¹] down the chlorophyll profile chl. It returns
// iAlpha and PAR at every depth in the grid. Values below the first
// depth with zero phytoplankton absorption are left at zero.
func DecayProfile(chl [grid.DepthCount]float64, direct, diffuse [grid.WLCount]float64, zenith, alphaB float64, w Water) (iAlpha, par [grid.DepthCount]float64, err error) {
	if err = w.check(); err != nil {
		return
	}
	muD, iz := InitMuDAndIZ(direct, diffuse, zenith)
	for z := range chl {
		var ok bool
		iAlpha[z], par[z], ok = Decay(&iz, muD, chl[z], alphaB, w)
		if !ok {
			break
		}
		if z > 0 && par[z] > par[z-1] {
			return iAlpha, par, fmt.Errorf("%w: %g > %g at depth index %d", ErrNonMonotonic, par[z], par[z-1], z)
		}
	}
	return
}
