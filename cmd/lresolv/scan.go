package main

import (
	"fmt"
	"strings"

	"github.com/birkland/lresolv"
	"github.com/birkland/lresolv/resolvers/local"
	"github.com/urfave/cli"
)

var scanOpts = struct {
	all bool
}{}

var scanCmd = cli.Command{
	Name:  "scan",
	Usage: "List the identifiers of local images",
	Description: `Walk a directory tree, and print an identifier for every JPEG 2000 image
	found, followed by its path.  The identifiers are encoded the way the resolver
	expects them, so they can be handed straight to resolve or status, e.g.

	  lresolv scan /images | cut -d ' ' -f 1 | xargs lresolv status

	Directories named pairtree_root are skipped.  With no directory argument, the
	current directory is scanned.`,
	ArgsUsage: "[ dir ]",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "all, a",
			Usage:       "List every file, not only JPEG 2000 images",
			Destination: &scanOpts.all,
		},
	},

	Action: func(c *cli.Context) error {
		return scanAction(c.Args())
	},
}

func scanAction(args []string) error {
	dir := "."
	switch len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		return fmt.Errorf("scan takes zero or one arguments")
	}

	pattern := local.JP2Pattern
	if scanOpts.all {
		pattern = nil
	}

	return local.Scan(dir, pattern, func(rec lresolv.ImageRecord) error {
		fmt.Println(strings.Join([]string{rec.Identifier, rec.ImageFile}, "    "))
		return nil
	})
}
