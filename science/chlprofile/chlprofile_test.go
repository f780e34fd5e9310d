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

package chlprofile

import (
	"math"
	"testing"

	"github.com/spatialmodel/dwcpn/grid"
)

func TestUniform(t *testing.T) {
	depths, chl := Generate(Params{Chl: 0.3, MLD: 20, ZBottom: 1000, Uniform: true})
	for z := range chl {
		if chl[z] != 0.3 {
			t.Fatalf("depth %g: have %g, want 0.3", depths[z], chl[z])
		}
	}
}

func TestGaussian(t *testing.T) {
	p := Params{Chl: 0.2, MLD: 20, ZM: 60, Rho: 1.5, Sigma: 10, ZBottom: -4000}
	depths, chl := Generate(p)
	for z, d := range depths {
		if chl[z] < 0 {
			t.Fatalf("negative chlorophyll %g at %g m", chl[z], d)
		}
		if d <= p.MLD && chl[z] != p.Chl {
			t.Errorf("mixed layer at %g m: have %g, want %g", d, chl[z], p.Chl)
		}
	}
	peak := chl[grid.DepthIndex(60)]
	if want := p.Chl * (1 + p.Rho); math.Abs(peak-want) > 1e-12 {
		t.Errorf("peak: have %g, want %g", peak, want)
	}
	if chl[grid.DepthIndex(50)] >= peak || chl[grid.DepthIndex(70)] >= peak {
		t.Error("maximum should be at ZM")
	}
	if deep := chl[grid.DepthCount-1]; math.Abs(deep-p.Chl) > 1e-9 {
		t.Errorf("deep value: have %g, want background %g", deep, p.Chl)
	}
}

func TestBelowBottom(t *testing.T) {
	p := Params{Chl: 0.2, MLD: 5, ZM: 30, Rho: 2, Sigma: 5, ZBottom: 30}
	depths, chl := Generate(p)
	bottom := chl[grid.DepthIndex(30)]
	for z, d := range depths {
		if d > 30 && chl[z] != bottom {
			t.Fatalf("%g m below a 30 m bottom: have %g, want %g", d, chl[z], bottom)
		}
	}
}
