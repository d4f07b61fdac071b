package api2md

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ParseURLList reads a newline-delimited URL list. Blank lines and lines
// starting with '#' are ignored; surrounding whitespace is trimmed.
// Input order is preserved, duplicates included: the pipeline owes one
// conversion result per effective line.
func ParseURLList(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}

// ReadURLFile reads a URL list from a file on disk.
// Returns ENOTFOUND if the file does not exist.
func ReadURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Errorf(ENOTFOUND, "URLs file %q not found", path)
		}
		return nil, err
	}
	defer f.Close()

	return ParseURLList(f)
}
