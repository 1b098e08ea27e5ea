package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"code.cloudfoundry.org/lxcerr/errcode"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type entry struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

var listCommand = cli.Command{
	Name:  "list",
	Usage: "list every error code in the catalogue",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "json",
			Usage: "print the catalogue as a JSON array",
		},
	},
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 0, exactArgs); err != nil {
			return err
		}

		codes := errcode.Codes()
		logrus.WithField("count", len(codes)).Debug("listing catalogue")

		entries := make([]entry, 0, len(codes))
		for _, c := range codes {
			entries = append(entries, entry{Code: int(c), Name: c.String(), Message: c.Message()})
		}

		if context.Bool("json") {
			entriesJson, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}

			_, err = os.Stdout.Write(append(entriesJson, '\n'))
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 1, '\t', 0)
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%s\n", e.Code, e.Name, e.Message)
		}
		return w.Flush()
	},
}
