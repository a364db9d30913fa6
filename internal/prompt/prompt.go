// Package prompt obtains the two init choices (dialect and config mode) from
// an operator. Providers are interchangeable: an interactive terminal menu,
// presets from flags or settings, or fixed values in tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seqseed/seqseed/internal/scaffold"
)

// Provider supplies the init choices.
type Provider interface {
	SelectDialect() (scaffold.Dialect, error)
	ConfirmConfigModule() (bool, error)
}

// Choices is what init needs to render a scaffold.
type Choices struct {
	Dialect scaffold.Dialect
	Mode    scaffold.ConfigMode
}

// Collect asks p for the dialect and then the config mode.
func Collect(p Provider) (Choices, error) {
	d, err := p.SelectDialect()
	if err != nil {
		return Choices{}, err
	}
	useConfig, err := p.ConfirmConfigModule()
	if err != nil {
		return Choices{}, err
	}
	return Choices{Dialect: d, Mode: scaffold.ConfigMode(useConfig)}, nil
}

// Interactive asks on a terminal using numbered menus.
type Interactive struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewInteractive returns a provider reading answers from r and writing
// questions to w.
func NewInteractive(r io.Reader, w io.Writer) *Interactive {
	return &Interactive{reader: bufio.NewReader(r), w: w}
}

// SelectDialect presents the supported dialects and returns the chosen one.
// The answer may be the menu number or the dialect name.
func (p *Interactive) SelectDialect() (scaffold.Dialect, error) {
	names := scaffold.DialectNames()
	idx, err := selectFromList(p.reader, p.w, "Please choose the desired database:", names)
	if err != nil {
		return "", err
	}
	return scaffold.Dialects[idx], nil
}

// ConfirmConfigModule asks whether the wiring module should load settings
// through the config module. An empty answer means yes.
func (p *Interactive) ConfirmConfigModule() (bool, error) {
	fmt.Fprintf(p.w, "\nDo you want to use config module to load the environment database variables? (Y/n): ")
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	return parseYesNo(line, true)
}

// selectFromList presents a numbered list and returns the selected index.
func selectFromList(reader *bufio.Reader, w io.Writer, prompt string, items []string) (int, error) {
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, item := range items {
		fmt.Fprintf(w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(w, "Enter number [1-%d]: ", len(items))

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("reading selection: %w", err)
	}
	answer := strings.TrimSpace(line)

	for i, item := range items {
		if answer == item {
			return i, nil
		}
	}
	num, err := strconv.Atoi(answer)
	if err != nil || num < 1 || num > len(items) {
		return 0, fmt.Errorf("invalid selection %q: choose 1-%d", answer, len(items))
	}
	return num - 1, nil
}

func parseYesNo(line string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: expected y or n", strings.TrimSpace(line))
	}
}
