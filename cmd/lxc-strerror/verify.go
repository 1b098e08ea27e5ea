package main

import (
	"fmt"

	"code.cloudfoundry.org/lxcerr/errcode"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var verifyCommand = cli.Command{
	Name:  "verify",
	Usage: "check that every error code has a name and a message",
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 0, exactArgs); err != nil {
			return err
		}

		if err := errcode.Verify(); err != nil {
			return errors.Wrap(err, "catalogue is inconsistent")
		}

		logrus.Debug("catalogue verified")
		fmt.Printf("catalogue ok (%d codes)\n", int(errcode.LastError))
		return nil
	},
}
