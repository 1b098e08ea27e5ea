package main

import (
	"fmt"

	"code.cloudfoundry.org/lxcerr/errcode"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var lookupCommand = cli.Command{
	Name:  "lookup",
	Usage: "print the message for one or more error codes",
	ArgsUsage: `<code> [code...]

Where "<code>" is either the numeric value of an error code or its name,
with or without the LXC_ERROR_ prefix (e.g. 2, NOT_FOUND, lxc_error_busy).`,
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, minArgs); err != nil {
			return err
		}

		msgs, err := lookupMessages(context.Args(), errcode.Lookup)
		if err != nil {
			return err
		}

		for _, msg := range msgs {
			fmt.Println(msg)
		}
		return nil
	},
}

// lookupMessages resolves every arg or fails on the first one without a
// message. Codes without a message are legal catalogue entries, so this is
// reported separately from a parse failure.
func lookupMessages(args []string, lookup func(int) (string, bool)) ([]string, error) {
	msgs := make([]string, 0, len(args))
	for _, arg := range args {
		logrus.WithFields(logrus.Fields{
			"arg": arg,
		}).Debug("looking up error code")

		code, err := errcode.Parse(arg)
		if err != nil {
			return nil, errors.Wrap(err, "lookup")
		}

		msg, ok := lookup(int(code))
		if !ok {
			return nil, &NoMessageError{Arg: arg}
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
