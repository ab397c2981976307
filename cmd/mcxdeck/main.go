package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	mcx "github.com/Bill-Wisotsky/classiq-library"
)

func main() {
	mcx.DisableLogging() // keep zerolog output off the alt screen

	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "mcxdeck: %v\n", err)
		os.Exit(1)
	}
}
