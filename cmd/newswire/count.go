package main

import (
	"fmt"

	"github.com/fwojciec/newswire"
	"github.com/fwojciec/newswire/sqlite"
)

// Run executes the count command.
func (c *CountCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(deps.Config.Sink.SQLitePath)
	if err := db.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newswire.ErrorMessage(err))
		return err
	}
	defer db.Close()

	count, err := sqlite.NewSink(db).CountArticles(deps.Ctx, "")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newswire.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d articles in %s\n", count, deps.Config.Sink.SQLitePath)
	return nil
}
