package cli

import "github.com/urfave/cli/v3"

func joinFlags(flagsList ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, f := range flagsList {
		flags = append(flags, f...)
	}
	return flags
}
