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

// Package atmos synthesizes the spectral direct and diffuse irradiance
// that reaches the sea surface under a clear sky, and calibrates it
// against observed daily PAR, cloud cover and the seasonal variation of
// the solar constant.
package atmos

import (
	"fmt"
	"math"

	"github.com/spatialmodel/dwcpn/grid"
)

// spectrum holds a value at each wavelength of the transmittance grid.
type spectrum [TransmittanceWLCount]float64

// transmittance holds the atmospheric transmittances for one air mass.
type transmittance struct {
	rayleigh, aerosol, waterVapour, ozone spectrum

	// tu is the transmittance of uniformly mixed gases, which is only
	// applied at the longest reference wavelengths.
	tu float64
}

// Airmass returns the relative optical air mass for the given zenith
// angle in radians and degrees. It is never less than 1.
func Airmass(zenith, zenithDeg float64) float64 {
	m := 1.0 / (math.Cos(zenith) + 0.15*math.Pow(93.885-zenithDeg, -1.253))
	if m < 1 {
		return 1
	}
	return m
}

func newTransmittance(airmass, zenith float64) *transmittance {
	t := new(transmittance)
	// Ozone uses its own path length, which only depends on zenith angle.
	em0 := 35.0 / math.Pow(1224.0*math.Pow(math.Cos(zenith), 2)+1.0, 0.5)
	for i, wl := range TransmittanceWavelengths {
		wld := wl / 1000.0
		t.rayleigh[i] = math.Exp(-airmass / (math.Pow(wld, 4) * (115.6406 - 1.335/math.Pow(wld, 2))))

		if i < aerosolSplit {
			t.aerosol[i] = math.Exp(-beta1 * math.Pow(wld, -alpha1) * airmass)
		} else {
			t.aerosol[i] = math.Exp(-beta2 * math.Pow(wld, -alpha2) * airmass)
		}

		wv := waterVapourAbsorption[i]
		t.waterVapour[i] = math.Exp(-0.3285 * wv * (precipitableWater + (1.42-precipitableWater)/2.0) * airmass /
			math.Pow(1.0+20.07*wv*airmass, 0.45))

		t.ozone[i] = math.Exp(-ozoneAbsorption[i] * 0.03 * em0)
	}
	t.tu = math.Exp(-1.41 * 0.15 * airmass / math.Pow(1.0+118.3*0.15*airmass, 0.45))
	return t
}

// airAlbedo returns the spectral albedo of the atmosphere.
func (t *transmittance) airAlbedo() spectrum {
	var a spectrum
	for i := range a {
		a[i] = t.ozone[i] * t.waterVapour[i] *
			(t.aerosol[i]*(1.0-t.rayleigh[i])*0.5 + t.rayleigh[i]*(1.0-t.aerosol[i])*0.22*0.928)
	}
	a[tuAlbedoIndex] *= t.tu
	return a
}

// direct returns the direct spectral irradiance at the surface, on a
// plane normal to the solar beam.
func (t *transmittance) direct() spectrum {
	var d spectrum
	for i := range d {
		d[i] = etIrradiance[i] * t.rayleigh[i] * t.aerosol[i] * t.waterVapour[i] * t.ozone[i]
	}
	d[tuAlbedoIndex] *= t.tu
	return d
}

// diffuse returns the diffuse spectral irradiance at the surface,
// including multiple reflections between the sea and the atmosphere.
func (t *transmittance) diffuse(zenith, zenithDeg float64, direct, albedo spectrum) spectrum {
	correction := DiffuseCorrection(zenithDeg)
	cosZ := math.Cos(zenith)
	var d spectrum
	for l := range d {
		xx := etIrradiance[l] * cosZ * t.ozone[l] * t.waterVapour[l]
		r := xx * t.aerosol[l] * (1.0 - t.rayleigh[l]) * 0.5
		a := xx * t.rayleigh[l] * (1.0 - t.aerosol[l]*0.928*0.82)
		if l == tuDiffuseIndex {
			r *= t.tu
			a *= t.tu
		}
		g := (direct[l]*cosZ + (r+a)*correction[l]) * albedo[l] * 0.05 / (1.0 - 0.05*albedo[l])
		d[l] = (r+a)*correction[l] + g
	}
	return d
}

// diffuseLUTIndex returns the row of diffuseCorrection at the upper end
// of the zenith bin that contains zenithDeg.
func diffuseLUTIndex(zenithDeg float64) int {
	for i, z := range diffuseCorrectionZenith {
		if zenithDeg < z {
			if i == 0 {
				return 1
			}
			return i
		}
	}
	return len(diffuseCorrectionZenith) - 1
}

// DiffuseCorrection returns the diffuse irradiance correction factor at
// each reference wavelength for the given zenith angle [degrees].
//
// The 5 tabulated factors are first interpolated in zenith angle. Up to
// 550 nm they are then expanded in 5 equal steps between neighboring
// factors; above 550 nm the last two factors are spread in proportion to
// the wavelength spacing of the reference grid.
func DiffuseCorrection(zenithDeg float64) [TransmittanceWLCount]float64 {
	i := diffuseLUTIndex(zenithDeg)
	c, cm1 := diffuseCorrection[i], diffuseCorrection[i-1]
	fraction := (zenithDeg - diffuseCorrectionZenith[i-1]) /
		(diffuseCorrectionZenith[i] - diffuseCorrectionZenith[i-1])

	var corr [5]float64
	for j := range corr {
		corr[j] = (c[j]-cm1[j])*fraction + cm1[j]
	}

	var o [TransmittanceWLCount]float64
	o[0] = corr[0]
	l := 0
	for l1 := 1; l1 < 4; l1++ {
		inc := (corr[l1-1] - corr[l1]) / 5.0
		for l2 := 0; l2 < 5; l2++ {
			l++
			o[l] = o[l-1] - inc
		}
	}

	dif := corr[4] - corr[3]
	wlDif := TransmittanceWavelengths[TransmittanceWLCount-1] - TransmittanceWavelengths[diffuseMidpoint]
	for l1 := diffuseMidpoint + 1; l1 < TransmittanceWLCount; l1++ {
		l++
		o[l] = o[l-1] + dif*(TransmittanceWavelengths[l1]-TransmittanceWavelengths[l1-1])/wlDif
	}
	return o
}

// Components returns the direct and diffuse spectral irradiance
// [W m⁻² µm⁻¹] at sea level on the working wavelength grid for the given
// solar zenith angle in radians and degrees.
func Components(zenith, zenithDeg float64) (direct, diffuse [grid.WLCount]float64, err error) {
	// The air albedo is estimated with a fixed air mass before the
	// transmittances are recalculated with the real one.
	albedo := newTransmittance(initialAirmass, zenith).airAlbedo()

	t := newTransmittance(Airmass(zenith, zenithDeg), zenith)
	dir := t.direct()
	dif := t.diffuse(zenith, zenithDeg, dir, albedo)

	direct, err = grid.ToWavelengths(TransmittanceWavelengths[:], dir[:])
	if err != nil {
		return direct, diffuse, fmt.Errorf("atmos: interpolating direct irradiance: %v", err)
	}
	diffuse, err = grid.ToWavelengths(TransmittanceWavelengths[:], dif[:])
	if err != nil {
		return direct, diffuse, fmt.Errorf("atmos: interpolating diffuse irradiance: %v", err)
	}
	return direct, diffuse, nil
}

// SolarCorrection returns the solar irradiance [W m⁻²] on the given day
// of year from the Thekaekara table, which accounts for the varying
// distance between the Earth and the Sun.
func SolarCorrection(day int) float64 {
	return grid.Interp(thekaekaraDays, thekaekaraIrradiance, float64(day))
}
