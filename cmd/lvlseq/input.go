package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// readInts parses whitespace-separated decimal integers from the input.
func (a *app) readInts() ([]int, error) {
	r, closeFn, err := a.openInput()
	if err != nil {
		return nil, err
	}
	defer func() { _ = closeFn() }()

	var out []int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", len(out)+1, err)
		}
		out = append(out, v)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	a.log.WithField("n", len(out)).Debug("read integers")
	return out, nil
}

// readText returns the whole input minus one trailing line break.
func (a *app) readText() (string, error) {
	r, closeFn, err := a.openInput()
	if err != nil {
		return "", err
	}
	defer func() { _ = closeFn() }()

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(strings.TrimSuffix(string(raw), "\n"), "\r")

	a.log.WithField("bytes", len(text)).Debug("read text")
	return text, nil
}

// writeInts prints xs space-separated on one line.
func (a *app) writeInts(xs []int) error {
	_, err := fmt.Fprintln(a.out, strings.Join(lo.Map(xs, func(x int, _ int) string {
		return strconv.Itoa(x)
	}), " "))
	return err
}
