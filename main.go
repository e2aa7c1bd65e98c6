package main

import (
	"os"

	"github.com/stokaro-labs/loomquery/cmd/loomquery"
)

func main() {
	loomquery.Execute(os.Args[1:]...)
}
