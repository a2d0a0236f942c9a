// Command passmaker-demo derives a password for one URL using the persisted
// profile settings. The master secret is read from the terminal without
// echo; the GUI front end wires the same app boundary.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/karu-codes/passmaker/app"
	"github.com/karu-codes/passmaker/klog"
	"github.com/karu-codes/passmaker/pmerrors"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: passmaker-demo <url>")
		os.Exit(2)
	}
	url := os.Args[1]

	logger, err := klog.InitProvider(os.Getenv("PASSMAKER_DEBUG") != "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	a := app.New(app.WithLogger(logger))
	if err := a.Load(); err != nil {
		logger.Warn("continuing with default profile", zap.String("cause", pmerrors.ToCMDError(err)))
	}

	fmt.Fprint(os.Stderr, "master secret: ")
	master, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		logger.Fatal("cannot read master secret", zap.Error(err))
	}
	logger.Debug("master secret entered", klog.Secret("master"))

	fmt.Fprintf(os.Stderr, "checksum: %s\n", a.Verify(string(master)))

	password, err := a.Generate(url, string(master))
	if err != nil {
		// Render the typed error in place of a password, never a guess.
		fmt.Println(pmerrors.ToCMDError(err))
		os.Exit(1)
	}
	fmt.Println(password)

	if err := a.Save(); err != nil {
		logger.Warn("settings not saved", zap.String("cause", pmerrors.ToCMDError(err)))
	}
}
