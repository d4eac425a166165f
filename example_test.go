//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package dnsx_test

import (
	"encoding/hex"
	"fmt"

	"github.com/bassosimone/runtimex"

	"github.com/bassosimone/dnsx/internal/wire"
)

func Example_encodeQueryForUDP() {
	opts := wire.EncodeOptions{ID: 37, RD: true}
	raw := runtimex.PanicOnError1(wire.EncodeQuery(wire.Query{
		Name:  "example.com",
		Type:  wire.TypeA,
		Class: wire.ClassIN,
	}, opts))
	fmt.Println(hex.EncodeToString(raw))

	// Output:
	// 002501000001000000000000076578616d706c6503636f6d0000010001
}
