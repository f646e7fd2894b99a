// Package main: CLI de diagnóstico para la planilla de usuarios.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
