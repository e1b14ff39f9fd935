// Command zplane reports the frequency response and the pole-zero layout of
// a discrete-time transfer function H(z) = B(z)/A(z).
//
// Usage:
//
//	zplane response -b 1,-0.5 -a 1
//	zplane pzk -b 0.0675,0.1349,0.0675 -a 1,-1.143,0.4128
//	zplane graph -b 1,1 -a 1,-0.9 --sfnorm 22050 --zplane
//	zplane design --cutoff 0.2 --atten 80
//	zplane filter -b 1,1 -a 2 input.wav output.wav
package main

import (
	"os"

	"github.com/tphakala/go-zplane/cmd/zplane/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
