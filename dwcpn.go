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

// Package dwcpn calculates daily water-column primary production with a
// depth-, wavelength- and time-resolved model. Spectral irradiance at the
// sea surface is synthesized from solar geometry and atmospheric
// transmittance, calibrated against observed daily PAR, propagated through
// the water column, and converted to production with a saturating
// photosynthesis-irradiance response. Production is integrated over depth
// down to the euphotic depth and over time from sunrise to noon, and the
// result is doubled for the afternoon.
package dwcpn

import (
	"fmt"
	"math"

	"github.com/spatialmodel/dwcpn/grid"
	"github.com/spatialmodel/dwcpn/science/light"
	"github.com/spatialmodel/dwcpn/science/production"
)

// Version gives the version number.
const Version = "0.3.0"

// ModelInputs holds the inputs for a single water column on a single day.
type ModelInputs struct {
	Lat float64 // Latitude [degrees north]
	Lon float64 // Longitude [degrees east]; not used in the calculation

	// ZBottom is the bottom depth [m]. Its sign is ignored.
	ZBottom float64

	Day int // Day of year, 1-366

	AlphaB float64 // Initial slope of the P-vs-I curve
	PMB    float64 // Maximum photosynthetic rate [mg C (mg chl)⁻¹ h⁻¹]

	// Chlorophyll profile parameters: surface chlorophyll [mg m⁻³],
	// mixed-layer depth [m], and the depth [m], relative height and
	// width [m] of the deep chlorophyll maximum.
	Chl, MLD, ZM, Rho, Sigma float64

	Cloud  float64 // Cloud cover [%]
	YelSub float64 // Yellow substance absorption relative to phytoplankton at 440 nm
	PAR    float64 // Daily surface PAR [einstein m⁻² d⁻¹]

	// BW, BBR and AY are the pure seawater scattering, pure seawater
	// backscattering and yellow substance absorption shape at each of
	// the working wavelengths. Empty values are replaced by defaults.
	BW, BBR, AY []float64
}

// PicoSettings holds the configuration of the picophytoplankton
// sub-model.
type PicoSettings struct {
	production.PicoParams

	// TruncateAtEuphotic specifies whether picophytoplankton production
	// is integrated only down to the euphotic depth rather than to the
	// bottom of the water column.
	TruncateAtEuphotic bool
}

// ModelSettings holds options that change how the model runs.
type ModelSettings struct {
	// MLDOnly specifies that chlorophyll is uniform with depth.
	MLDOnly bool

	// IOMOnly specifies that only the noon maximum irradiance should be
	// calculated.
	IOMOnly bool

	// Pico, if not nil, enables the picophytoplankton sub-model.
	Pico *PicoSettings
}

// Timestep holds diagnostics for one time of day.
type Timestep struct {
	Time          float64 // [hours]
	ZenithDeg     float64 // Solar zenith angle [degrees]
	SurfacePAR    float64 // [einstein m⁻² h⁻¹]
	PP            float64 // Column production [mg C m⁻² h⁻¹]
	EuphoticDepth float64 // [m]

	// Valid is false where the sun is too low or no euphotic depth was
	// found.
	Valid bool
}

// PicoOutputs holds the results of the picophytoplankton sub-model.
type PicoOutputs struct {
	// Surface and Subsurface are the chlorophyll [mg m⁻³] of the two
	// populations at each depth, averaged over the valid time steps.
	Surface, Subsurface [grid.DepthCount]float64

	// PP is the daily picophytoplankton production [mg C m⁻² d⁻¹].
	PP float64
}

// ModelOutputs holds the results of a model run.
type ModelOutputs struct {
	PP            float64 // Daily column production [mg C m⁻² d⁻¹]
	EuphoticDepth float64 // Maximum euphotic depth over the day [m]
	SpectralIStar float64
	IOM           float64 // Noon maximum surface PAR [einstein m⁻² h⁻¹]

	Steps [grid.Timesteps]Timestep

	// NoonProfile is the production profile at the last valid time step.
	NoonProfile *production.Profile

	// Pico is nil unless the picophytoplankton sub-model is enabled.
	Pico *PicoOutputs
}

// WithDefaultOptics returns a copy of in where any empty optical
// coefficients are replaced by the defaults for pure seawater.
func (in ModelInputs) WithDefaultOptics() ModelInputs {
	if len(in.BW) == 0 {
		in.BW = light.PureWaterScattering()
	}
	if len(in.BBR) == 0 {
		in.BBR = light.BackscatterRatio()
	}
	if len(in.AY) == 0 {
		in.AY = light.YellowSubstanceAbsorption()
	}
	return in
}

// Validate checks that the inputs are physically reasonable for the given
// settings. The returned error wraps ErrInvalidInput.
func (in ModelInputs) Validate(s ModelSettings) error {
	invalid := func(format string, a ...interface{}) error {
		return fmt.Errorf("dwcpn: %w: %s", ErrInvalidInput, fmt.Sprintf(format, a...))
	}
	type value struct {
		name string
		v    float64
	}
	values := []value{{"Lat", in.Lat}, {"ZBottom", in.ZBottom}, {"AlphaB", in.AlphaB},
		{"PMB", in.PMB}, {"Chl", in.Chl}, {"MLD", in.MLD}, {"Cloud", in.Cloud},
		{"YelSub", in.YelSub}, {"PAR", in.PAR}}
	if !s.MLDOnly {
		values = append(values, value{"ZM", in.ZM}, value{"Rho", in.Rho}, value{"Sigma", in.Sigma})
	}
	for _, v := range values {
		if math.IsNaN(v.v) || math.IsInf(v.v, 0) {
			return invalid("%s=%g", v.name, v.v)
		}
	}
	switch {
	case in.Lat < -90 || in.Lat > 90:
		return invalid("latitude %g outside [-90, 90]", in.Lat)
	case in.Day < 1 || in.Day > 366:
		return invalid("day of year %d outside [1, 366]", in.Day)
	case in.Chl < 0:
		return invalid("negative chlorophyll %g", in.Chl)
	case in.PAR < 0:
		return invalid("negative PAR %g", in.PAR)
	case in.Cloud < 0 || in.Cloud > 100:
		return invalid("cloud cover %g%% outside [0, 100]", in.Cloud)
	case !(in.PMB > 0):
		return invalid("PMB=%g but should be >0", in.PMB)
	case in.AlphaB < 0:
		return invalid("negative AlphaB %g", in.AlphaB)
	case in.YelSub < 0:
		return invalid("negative YelSub %g", in.YelSub)
	case in.MLD < 0:
		return invalid("negative MLD %g", in.MLD)
	case in.ZBottom == 0:
		return invalid("zero bottom depth")
	case !s.MLDOnly && !(in.Sigma > 0):
		return invalid("Sigma=%g but should be >0", in.Sigma)
	}
	for _, o := range []struct {
		name string
		v    []float64
	}{{"BW", in.BW}, {"BBR", in.BBR}, {"AY", in.AY}} {
		if len(o.v) != grid.WLCount {
			return invalid("%s has %d values; want %d", o.name, len(o.v), grid.WLCount)
		}
		for l, v := range o.v {
			if !(v >= 0) || math.IsInf(v, 0) {
				return invalid("%s[%d]=%g but should be finite and >=0", o.name, l, v)
			}
		}
	}
	if p := s.Pico; p != nil {
		if !(p.KS > 0) || !(p.KD > 0) {
			return invalid("picophytoplankton light scales KS=%g, KD=%g but should be >0", p.KS, p.KD)
		}
		if p.SMax < 0 || p.DMax < 0 {
			return invalid("negative picophytoplankton maximum SMax=%g, DMax=%g", p.SMax, p.DMax)
		}
	}
	return nil
}
