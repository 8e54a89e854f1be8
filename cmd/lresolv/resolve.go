package main

import (
	"fmt"
	"strings"

	"github.com/birkland/lresolv"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var resolveOpts = struct {
	referent bool
}{}

var resolveCmd = cli.Command{
	Name:  "resolve",
	Usage: "Resolve identifiers to image files",
	Description: `Given a list of identifiers, print the image file each resolves to.

	Identifiers are expected to be form-encoded twice, as they would arrive
	from an OpenURL request, e.g.

	  lresolv resolve file%253A%252F%252F%252Fimages%252Fa.jp2

	prints the decoded identifier and its image file

	  file:///images/a.jp2    /images/a.jp2

	With -r, each identifier is treated as the URI of a referent entity
	rather than as a plain string, and resolved as such.`,
	ArgsUsage: "id...",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "referent, r",
			Usage:       "Resolve identifiers as referent URIs",
			Destination: &resolveOpts.referent,
		},
	},

	Action: func(c *cli.Context) error {
		return resolveAction(c.Args())
	},
}

func resolveAction(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no identifiers given")
	}

	cxt := newCxt()
	r := cxt.Resolver()

	for _, id := range args {
		var rec *lresolv.ImageRecord
		var err error

		if resolveOpts.referent {
			referent, perr := cxt.ParseRef([]string{id})
			if perr != nil {
				return perr
			}
			rec, err = r.ReferentImageRecord(referent)
		} else {
			rec, err = r.ImageRecord(id)
		}
		if err != nil {
			return errors.Wrapf(err, "could not resolve %s", id)
		}

		fmt.Println(strings.Join([]string{rec.Identifier, rec.ImageFile}, "    "))
	}

	return nil
}
