package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	foldline "github.com/iw2rmb/foldline"
	"github.com/iw2rmb/foldline/displaymap"
	"github.com/iw2rmb/foldline/internal/grapheme"
)

const sampleText = `package main

import "fmt"

func main() {
	for i := 0; i < 3; i++ {
		fmt.Println("line", i, "of a loop body long enough to wrap on narrow terminals")
	}
}

// 日本語のコメントは全角なので二セル幅で折り返されます。
func helper() int {
	return 42
}
`

func main() {
	width := flag.Int("width", 0, "wrap width in cells (0 follows the terminal)")
	mode := flag.String("mode", "word", "wrap mode: grapheme, word or none")
	tab := flag.Int("tab", grapheme.DefaultTabWidth, "tab width")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println(foldline.VersionTag())
		return
	}

	if err := run(*width, *mode, *tab, flag.Arg(0)); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(width int, modeName string, tab int, path string) error {
	mode, ok := displaymap.ParseWrapMode(modeName)
	if !ok {
		return fmt.Errorf("unknown wrap mode %q", modeName)
	}

	text := sampleText
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		text = string(data)
	}

	logger, closeLog, err := openLog(os.Getenv("FOLDLINE_LOG"))
	if err != nil {
		return err
	}
	defer closeLog()

	m := newModel(config{Text: text, Width: width, Mode: mode, TabWidth: tab, Logger: logger})
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// openLog routes debug logs to path. Bubble Tea owns the terminal, so logs
// never go to stderr.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := tea.LogToFile(path, "foldline")
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return newLogger(f), func() { _ = f.Close() }, nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
