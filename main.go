// Command docsearch is a terminal client for a document search API.
package main

import "docsearch/internal/cli"

func main() {
	cli.Execute()
}
