package main

import (
	"fmt"
	"strings"

	"github.com/birkland/lresolv"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

var statusOpts = struct {
	jobs int
	ping bool
}{}

var statusCmd = cli.Command{
	Name:  "status",
	Usage: "Check whether identifiers resolve to existing image files",
	Description: `Given a list of identifiers, report whether the image file behind each
	one exists, without reading it.

	Each line of output holds the status (OK, or Not Found) and the identifier, in
	the order the identifiers were given.  Checks run in parallel, see -j.

	With --ping, each identifier is instead probed as a referent URI and the
	response a ping service would give is printed: the status code, and a JSON
	body for images that exist.`,
	ArgsUsage: "id...",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:        "jobs, j",
			Usage:       "Number of status checks to run at once",
			Value:       10,
			Destination: &statusOpts.jobs,
		},
		cli.BoolFlag{
			Name:        "ping",
			Usage:       "Print ping responses",
			Destination: &statusOpts.ping,
		},
	},

	Action: func(c *cli.Context) error {
		return statusAction(c.Args())
	},
}

func statusAction(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no identifiers given")
	}

	cxt := newCxt()

	if statusOpts.ping {
		for _, id := range args {
			referent, err := cxt.ParseRef([]string{id})
			if err != nil {
				return err
			}
			result := cxt.Ping(referent)
			fmt.Println(strings.Join([]string{fmt.Sprint(result.Code), id, string(result.Body)}, "    "))
		}
		return nil
	}

	statuses, err := checkAll(cxt.Resolver(), args, statusOpts.jobs)
	if err != nil {
		return err
	}

	for i, id := range args {
		fmt.Println(strings.Join([]string{statuses[i].String(), id}, "    "))
	}
	return nil
}

// checkAll checks the status of every identifier using a fixed number of
// workers.  Statuses are returned in the order of the identifiers.
func checkAll(r lresolv.ReferentResolver, ids []string, workers int) ([]lresolv.Status, error) {
	if workers < 1 {
		workers = 1
	}

	statuses := make([]lresolv.Status, len(ids))
	q := make(chan int, workers)

	var g errgroup.Group
	for i := 1; i <= workers; i++ {
		g.Go(func() (failed error) {

			// Keep draining the queue after a failure, so the producer never blocks
			for idx := range q {
				if failed != nil {
					continue
				}

				status, err := r.Status(ids[idx])
				if err != nil {
					failed = errors.Wrapf(err, "could not check status of %s", ids[idx])
					continue
				}
				statuses[idx] = status
			}
			return failed
		})
	}

	for i := range ids {
		q <- i
	}
	close(q)

	return statuses, g.Wait()
}
