package golay_test

import (
	"fmt"

	golay "github.com/Venemo/golay-fast"
)

func Example() {
	codeword := golay.Encode(0x001)
	fmt.Printf("%06x\n", codeword)

	// Flip three bits, two in the data half and one in the parity half.
	corrupt := codeword ^ 0x810004
	fmt.Printf("%03x\n", golay.Decode(corrupt))

	// Four errors are detected.
	fmt.Println(golay.Decode(codeword^0x00000f) == golay.ErrorResult)
	// Output:
	// 001aab
	// 001
	// true
}
