package commands

import (
	"fmt"
	"os"

	"jailoo/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("jailoo error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`usage: jailoo <command> [args]

commands:
  run <config.yml>     start the post service
  post <subcommand>    admin client: list|create|update|delete|replace
  token <subject>      mint an admin bearer token (AUTH_JWT_SECRET)
  version              print version
  help                 this message`)
}
