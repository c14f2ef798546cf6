package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter asks questions on out and reads one line of answer from in.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// Text prints message and returns the next input line without its newline.
// io.EOF is returned once input is exhausted.
func (p *prompter) Text(message string) (string, error) {
	fmt.Fprint(p.out, message)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

func (p *prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}
