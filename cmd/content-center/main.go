// Package main is the entry point for the Content Center Service.
package main

import (
	_ "go.uber.org/automaxprocs/maxprocs"

	contentcenter "github.com/kart-io/content-center/internal/content-center"
)

func main() {
	contentcenter.NewApp().Run()
}
