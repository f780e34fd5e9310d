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

package dwcpn

import "errors"

var (
	// ErrInvalidInput is returned when the model inputs are not physically
	// reasonable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateDay is returned when the sun does not cross 80° zenith
	// before noon, as in polar day or polar night.
	ErrDegenerateDay = errors.New("no 80° zenith crossing before noon")

	// ErrImplausibleProduction is returned when the calculated daily
	// production is above maxProduction or is not a number.
	ErrImplausibleProduction = errors.New("implausible daily production")
)

// maxProduction is the largest plausible daily column production
// [mg C m⁻² d⁻¹].
const maxProduction = 50000.0
