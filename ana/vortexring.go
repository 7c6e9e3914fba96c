// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// RectRingCenterSpeed returns the magnitude of the velocity induced at the
// center of a closed rectangular vortex ring with side lengths a and b
// carrying circulation γ:
//
//   V = 2 γ √(a²+b²) / (π a b)
func RectRingCenterSpeed(γ, a, b float64) float64 {
	return 2.0 * γ * math.Sqrt(a*a+b*b) / (math.Pi * a * b)
}
