package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/philip928lin/PathNavigator/internal/cmd"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		cmd.NewRootCmd(),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
