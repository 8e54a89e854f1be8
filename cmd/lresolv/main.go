package main

import (
	"log"
	"os"

	"github.com/birkland/lresolv"
	"github.com/birkland/lresolv/resolv"
	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var mainOpts = struct {
	props     string
	verbosity int
}{}

func main() {
	app := cli.NewApp()
	app.Name = "lresolv"
	app.Usage = "Resolve OpenURL referents to local image files"
	app.EnableBashCompletion = true
	app.Commands = []cli.Command{
		resolveCmd,
		statusCmd,
		scanCmd,
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "props, p",
			Usage:       "Resolver properties file (YAML)",
			EnvVar:      "LRESOLV_PROPS",
			Destination: &mainOpts.props,
		},
		cli.IntFlag{
			Name:        "verbosity, v",
			Usage:       "Log verbosity; 1 logs every resolved identifier",
			EnvVar:      "LRESOLV_VERBOSITY",
			Destination: &mainOpts.verbosity,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func logger() logr.Logger {
	stdr.SetVerbosity(mainOpts.verbosity)
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags))
}

// newCxt initializes the configured resolver.  An unusable resolver is fatal.
func newCxt() *resolv.Cxt {
	props, err := properties(mainOpts.props)
	if err != nil {
		log.Fatalf("could not load resolver properties %+v", err)
	}

	cxt, err := resolv.NewCxt(props, logger())
	if err != nil {
		log.Fatalf("could not initialize resolver %+v", err)
	}
	return cxt
}

func properties(path string) (lresolv.Properties, error) {
	if path == "" {
		return lresolv.Properties{}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open properties file %s", path)
	}
	defer file.Close()

	return resolv.LoadProperties(file)
}
