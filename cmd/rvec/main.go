// Command rvec encodes, inspects and casts serialized vectors.
//
//	rvec encode --kind double --out x.rvec 1 NA 3.5
//	rvec inspect x.rvec
//	rvec cast --to character --in x.rvec --out y.rvec
package main

import (
	"log"
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
