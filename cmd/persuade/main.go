// Command persuade runs policy searches and threshold plans over a YAML scenario.
package main

import "github.com/arloliu/persuade/internal/cli"

func main() {
	cli.Execute()
}
