package utils

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	bettererrors "github.com/xtuc/better-errors"
	bettererrorstree "github.com/xtuc/better-errors/printer/tree"
)

// FailWith prints the whole error chain and exits. Errors that carry no chain
// are re-panicked as is.
func FailWith(err error) {
	if !bettererrors.IsBetterError(err) {
		panic(err)
	}

	command := strings.Join(os.Args, " ")

	berror := bettererrors.
		New(command).
		SetContext("version", GetVersion()).
		With(err)

	msg := bettererrorstree.PrintChain(berror)
	printChain("❌  An error occurred.", msg)

	urlOptions := url.Values{}
	urlOptions.Set("body", wrapInMarkdownCode(msg))
	fmt.Println("Please report this error here: https://github.com/theblacknight/raycast2d/issues/new?" + urlOptions.Encode())

	os.Exit(1)
}

// WarnWith prints the whole error chain and carries on.
func WarnWith(err error) {
	if !bettererrors.IsBetterError(err) {
		fmt.Println(err.Error())
		return
	}

	msg := bettererrorstree.PrintChain(err.(*bettererrors.Chain))
	printChain("⚠️  Warning", msg)
}

func printChain(title string, msg string) {
	fmt.Println("")
	fmt.Println(title)
	fmt.Println("")

	fmt.Print(msg)

	fmt.Println("")
}

func wrapInMarkdownCode(str string) string {
	return fmt.Sprintf("```sh\n%s\n```", str)
}
