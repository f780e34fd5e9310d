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

// Package solar calculates the solar geometry needed to integrate
// production over the day: declination, sunrise, the time at which the
// sun crosses a given zenith angle, and the zenith angle through the
// morning.
//
// All clock times are local solar hours, with noon at 12.
package solar

import (
	"math"

	"github.com/spatialmodel/dwcpn/grid"
)

const deg2rad = math.Pi / 180

// Declination returns the solar declination [radians] on the given day
// of year.
func Declination(day int) float64 {
	θ := 2 * math.Pi * float64(day) / 365
	δ := 0.39637 - 22.9133*math.Cos(θ) + 4.02543*math.Sin(θ) -
		0.38720*math.Cos(2*θ) + 0.05200*math.Sin(2*θ)
	return δ * deg2rad
}

// Sunrise returns the time of sunrise [hours], the solar declination
// [radians] and the latitude in radians for the given day of year and
// latitude [degrees]. During polar day sunrise is 0 and during polar
// night it is 12; see Degenerate.
func Sunrise(day int, lat float64) (sunrise, declination, latRad float64) {
	declination = Declination(day)
	latRad = lat * deg2rad
	cosH := -math.Tan(latRad) * math.Tan(declination)
	switch {
	case math.IsNaN(cosH):
		return math.NaN(), declination, latRad
	case cosH <= -1:
		return 0, declination, latRad
	case cosH >= 1:
		return 12, declination, latRad
	}
	sunrise = 12 - math.Acos(cosH)*12/math.Pi
	return sunrise, declination, latRad
}

// Degenerate reports whether a sunrise time describes a day that cannot
// be integrated: polar day, polar night, or a non-finite value.
func Degenerate(sunrise float64) bool {
	return !(sunrise > 0 && sunrise < 12)
}

// ZenithTime returns the morning time [hours] at which the solar zenith
// angle equals zenith [degrees]. It returns NaN if the sun does not cross
// that zenith angle on this day, either because it never climbs that high
// or because it never sinks that low.
func ZenithTime(declination, latRad, zenith float64) float64 {
	cosH := (math.Cos(zenith*deg2rad) - math.Sin(latRad)*math.Sin(declination)) /
		(math.Cos(latRad) * math.Cos(declination))
	if math.IsNaN(cosH) || math.IsInf(cosH, 0) || cosH < -1 || cosH > 1 {
		return math.NaN()
	}
	return 12 - math.Acos(cosH)*12/math.Pi
}

// TimeArray returns evenly spaced times [hours] from start to noon
// inclusive, and the spacing between them.
func TimeArray(start float64) (times [grid.Timesteps]float64, Δt float64) {
	Δt = (12 - start) / float64(grid.Timesteps-1)
	for i := range times {
		times[i] = start + Δt*float64(i)
	}
	return
}

// ZenithArray returns the solar zenith angle in radians and degrees at
// each of the given times.
func ZenithArray(times [grid.Timesteps]float64, declination, latRad float64) (zenith, zenithDeg [grid.Timesteps]float64) {
	for i, t := range times {
		zenith[i] = Zenith(t, declination, latRad)
		zenithDeg[i] = zenith[i] / deg2rad
	}
	return
}

// Zenith returns the solar zenith angle [radians] at time t [hours].
func Zenith(t, declination, latRad float64) float64 {
	h := (12 - t) * math.Pi / 12
	cosZ := math.Sin(latRad)*math.Sin(declination) +
		math.Cos(latRad)*math.Cos(declination)*math.Cos(h)
	cosZ = math.Max(-1, math.Min(1, cosZ))
	return math.Acos(cosZ)
}
