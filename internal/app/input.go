package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const badInput = "[-] Bad input. Try again."

// Prompter reads validated non-negative integers from line-oriented input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads answers from r and writes prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w}
}

// Uint prompts until a non-negative integer is entered. When abortable is
// set, answering "q" returns aborted=true instead. The only error is the
// input running out.
func (p *Prompter) Uint(label string, abortable bool) (value int, aborted bool, err error) {
	prompt := label
	if abortable {
		prompt += "\nUse `q` to quit."
	}
	for {
		fmt.Fprintln(p.out, prompt)
		line, err := p.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return 0, false, err
		}
		answer := strings.TrimSpace(line)
		if abortable && answer == "q" {
			return 0, true, nil
		}
		if parsed, perr := strconv.ParseUint(answer, 10, 31); perr == nil {
			return int(parsed), false, nil
		}
		fmt.Fprintln(p.out, badInput)
		if err == io.EOF {
			return 0, false, err
		}
	}
}
