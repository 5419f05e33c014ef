package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Randomized stitch placement is reproducible per seed string, so a seed is
// something users keep and share. When the user doesn't care, we hand out a
// readable name like "WittyMarmot" instead of line noise; it's easier to jot
// down and to recognize later.

func init() {
	// Fresh names on every run, so two unseeded invocations don't silently
	// produce the same texture.
	petname.NonDeterministicMode()
}

func Seed() string {
	return fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
}
