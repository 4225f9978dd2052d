package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// MaxLineLength is the longest input line the shell will run
const MaxLineLength = 1 << 20

// ErrLineTooLong is returned for a line over MaxLineLength. The rest of the
// line is discarded and the next read starts on the following line.
var ErrLineTooLong = errors.New("input line too long")

// ScannerReader reads lines from a non-interactive source such as a pipe
type ScannerReader struct {
	reader *bufio.Reader
	prompt io.Writer
}

// NewScannerReader reads lines from r. When prompt is not nil the shell
// prompt is written to it before every line.
func NewScannerReader(r io.Reader, prompt io.Writer) *ScannerReader {
	return &ScannerReader{reader: bufio.NewReader(r), prompt: prompt}
}

func (r *ScannerReader) ReadLine() (string, error) {
	if r.prompt != nil {
		fmt.Fprint(r.prompt, Prompt)
	}

	var (
		line    []byte
		read    int
		tooLong bool
	)
	for {
		chunk, err := r.reader.ReadSlice('\n')
		read += len(chunk)
		if read > MaxLineLength+1 {
			tooLong, line = true, nil
		} else {
			line = append(line, chunk...)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) && read == 0 {
			return "", io.EOF
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		break
	}

	if tooLong {
		return "", fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, MaxLineLength)
	}
	return strings.TrimSuffix(strings.TrimSuffix(string(line), "\n"), "\r"), nil
}

// RunTerminal runs the shell on a terminal in raw mode with line editing,
// history and tab completion of command names.
func (s *Shell) RunTerminal(fd int, rw io.ReadWriter) error {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("error preparing terminal: %v", err)
	}
	defer term.Restore(fd, state)

	t := term.NewTerminal(rw, Prompt)
	t.AutoCompleteCallback = s.complete
	if width, height, err := term.GetSize(fd); err == nil {
		t.SetSize(width, height)
	}

	// Output must go through the terminal to get \r\n line endings in raw mode
	s.out = t
	return s.Run(t)
}
