package main

import "github.com/nikogura/jd-agent/cmd"

func main() {
	cmd.Execute()
}
