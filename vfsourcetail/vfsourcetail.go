package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/c2fo/vfs/v7/vfssimple"
	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/c2fo/vfs/contrib/vfsource"
)

func main() {
	app := cli.NewApp()
	app.Name = "vfsourcetail"
	app.Usage = "Polls a vfs location and prints every payload of new or changed files"
	app.ArgsUsage = "<location URI>"
	app.Flags = []cli.Flag{
		cli.DurationFlag{
			Name:  "interval",
			Usage: "polling interval",
			Value: 10 * time.Second,
		},
		cli.IntFlag{
			Name:  "max",
			Usage: "maximum files per payload, 0 for unbounded",
		},
		cli.StringFlag{
			Name:  "staging",
			Usage: "local staging location URI for retrieved files",
			Value: "file:///tmp/vfsourcetail/",
		},
	}
	app.Action = tail

	if err := app.Run(os.Args); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func tail(c *cli.Context) error {
	uri := c.Args().Get(0)
	if uri == "" {
		return errors.New("vfsourcetail requires a location URI argument")
	}

	remote, err := vfssimple.NewLocation(uri)
	if err != nil {
		return fmt.Errorf("bad location URI %s: %w", uri, err)
	}
	staging, err := vfssimple.NewLocation(c.String("staging"))
	if err != nil {
		return fmt.Errorf("bad staging URI %s: %w", c.String("staging"), err)
	}

	source, err := vfsource.NewLocationSource(remote, staging,
		vfsource.WithMaxMessagesPerPayload(c.Int("max")),
		vfsource.WithRetrievalErrorHandler(func(d vfsource.Descriptor, err error) {
			color.Red("dropped %s: %v", d.Name, err)
		}),
	)
	if err != nil {
		return err
	}

	color.Cyan("polling %s every %s", uri, c.Duration("interval"))
	ticker := time.NewTicker(c.Duration("interval"))
	defer ticker.Stop()

	for range ticker.C {
		msg, err := source.Receive()
		if err != nil {
			color.Red("poll failed: %v", err)
			continue
		}
		if msg == nil {
			continue
		}

		color.Green("payload %s: %d file(s)", msg.ID, len(msg.Files))
		for _, f := range msg.Files {
			fmt.Printf("  %s\t%d bytes\t%s\n",
				f.Descriptor.Name, f.Descriptor.Size, f.Descriptor.Modified.Format(time.RFC3339))
		}
		source.OnSend(msg)
	}
	return nil
}
