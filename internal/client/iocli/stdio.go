package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Stdio struct {
	in     *bufio.Reader
	out    io.Writer
	inFile *os.File
}

func NewStdio() IO {
	return NewStdioWith(os.Stdin, os.Stdout)
}

// NewStdioWith создает IO поверх произвольных потоков.
// Ввод считается интерактивным, только если in является терминалом
func NewStdioWith(in io.Reader, out io.Writer) *Stdio {
	s := &Stdio{
		in:  bufio.NewReader(in),
		out: out,
	}
	if f, ok := in.(*os.File); ok {
		s.inFile = f
	}
	return s
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) IsInteractive() bool {
	if s.inFile == nil {
		return false
	}
	return term.IsTerminal(int(s.inFile.Fd()))
}
