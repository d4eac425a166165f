//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package wire

import "math/rand/v2"

// randomID draws a transaction ID uniformly from [0, 65535].
func randomID() uint16 {
	return uint16(rand.IntN(1 << 16))
}
