package utils

import (
	"fmt"
	"log"

	"github.com/ttacon/chalk"
)

// Check panics with the given message when err is non nil.
func Check(err error, msg string) {
	if err == nil {
		return
	}

	fmt.Print(chalk.Red)
	log.Print(msg, chalk.Reset)
	log.Panicln(err)
}

// Assert panics with the given message when the condition does not hold.
func Assert(ok bool, msg string) {
	if ok {
		return
	}

	fmt.Print(chalk.Red)
	log.Print(msg, chalk.Reset)
	log.Panic()
}
