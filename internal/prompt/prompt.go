package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrNoChoices is returned by Select when there is nothing to choose from.
var ErrNoChoices = errors.New("nothing to select")

// Prompter asks questions on out and reads answers from in, one per line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// fd is the terminal file descriptor of in, or -1.
	fd int
}

func New(in io.Reader, out io.Writer) *Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Prompter{in: bufio.NewReader(in), out: out, fd: fd}
}

// Ask shows "label [def]: " until the answer is acceptable. An empty answer
// selects def. When allowed is not empty the answer must be one of its
// values, and an empty default does not count as an answer.
func (p *Prompter) Ask(label string, allowed []string, def string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}

		if answer == "" {
			answer = def
		}
		if len(allowed) == 0 || slices.Contains(allowed, answer) {
			return answer, nil
		}
	}
}

// AskSecret reads an answer without echo when in is a terminal.
func (p *Prompter) AskSecret(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if p.fd < 0 {
		return p.readLine()
	}

	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

// Select lists options numbered from 1 and returns the index picked.
func (p *Prompter) Select(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoChoices
	}

	allowed := make([]string, 0, len(options))
	fmt.Fprintln(p.out)
	for i, o := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, o)
		allowed = append(allowed, strconv.Itoa(i+1))
	}

	answer, err := p.Ask("\n"+label, allowed, "")
	if err != nil {
		return 0, err
	}
	idx, _ := strconv.Atoi(answer)
	return idx - 1, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
