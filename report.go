package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	tm "github.com/buger/goterm"
)

// Reporter is the output sink every component writes through. Components
// never touch the process console directly, so the whole pipeline can run
// headless under test.
type Reporter interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	// Debugf is only rendered when verbose output is on.
	Debugf(format string, args ...interface{})
}

type consoleReporter struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

func NewConsoleReporter(verbose bool) Reporter {
	return &consoleReporter{out: os.Stdout, verbose: verbose}
}

func (r *consoleReporter) printLn(prefix, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "["+AppName+"] "+prefix+format+"\n", args...)
}

func (r *consoleReporter) Infof(format string, args ...interface{}) {
	r.printLn("", format, args...)
}

func (r *consoleReporter) Warnf(format string, args ...interface{}) {
	r.printLn(tm.Color("WARNING ", tm.YELLOW), format, args...)
}

func (r *consoleReporter) Errorf(format string, args ...interface{}) {
	r.printLn(tm.Color("ERROR ", tm.RED), format, args...)
}

func (r *consoleReporter) Debugf(format string, args ...interface{}) {
	if r.verbose {
		r.printLn("", format, args...)
	}
}

func toString(val interface{}) string {
	switch v := val.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', 6, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func totalBytesToString(b int64, useDecimalSystem bool) string {
	unit := int64(1024)
	format := "%.1f %ciB"

	if useDecimalSystem {
		unit = 1000
		format = "%.1f %cB"
	}

	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf(format, float64(b)/float64(div), "kMGTPE"[exp])
}
