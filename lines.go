package tbsh

import (
	"bufio"
	"io"
)

type lineReader struct {
	scan *bufio.Scanner
}

// Lines adapts an io.Reader into a LineSource, one command per line.
// Recall history is discarded; it backs one-shot execution and tests.
func Lines(r io.Reader) LineSource {
	return &lineReader{
		scan: bufio.NewScanner(r),
	}
}

func (l *lineReader) ReadLine(_ string) (string, error) {
	if !l.scan.Scan() {
		if err := l.scan.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return l.scan.Text(), nil
}

func (l *lineReader) AppendHistory(_ string) {}

func (l *lineReader) Close() error {
	return nil
}
