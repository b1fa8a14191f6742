// Command wikinormal normalizes wiki page and category names.
//
// Names come from the arguments, or one per line on stdin when there are none.
//
//	wikinormal "Component:Image Block"          # component:image-block
//	wikinormal -mode decode "Big%20Cheese"      # big-cheese
//	wikinormal -mode check < names.txt          # prints names not in normal form
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"wikinormal/internal/core/normalize"
	"wikinormal/internal/core/version"
	"wikinormal/internal/platform/logger"
)

const (
	modeNormalize = "normalize"
	modeDecode    = "decode"
	modeCheck     = "check"
)

// record is one -json output line
type record struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Normal bool   `json:"normal"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wikinormal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		mode    = fs.String("mode", modeNormalize, "normalize, decode (percent-decode first) or check")
		slashes = fs.String("slashes", "", "filter or keep (default from NORMALIZE_SLASHES)")
		verify  = fs.Bool("verify", false, "check every result is in normal form")
		asJSON  = fs.Bool("json", false, "emit one JSON object per name")
		showVer = fs.Bool("version", false, "print build info and exit")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVer {
		_, _ = fmt.Fprintln(stdout, version.Info().String())
		return 0
	}

	switch *mode {
	case modeNormalize, modeDecode, modeCheck:
	default:
		_, _ = fmt.Fprintf(stderr, "error: unknown -mode %q\n", *mode)
		return 2
	}

	lopt := logger.FromEnv()
	lopt.Writer = stderr
	lopt.Component = "normalize"

	opt := normalize.FromEnv()
	opt.Logger = logger.New(lopt)
	opt.Verify = opt.Verify || *verify
	if *slashes != "" {
		opt.Slashes = normalize.SlashMode(*slashes)
	}
	n, err := normalize.New(opt)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	out := bufio.NewWriter(stdout)
	defer func() { _ = out.Flush() }()
	enc := json.NewEncoder(out)

	status := 0
	emit := func(in string) error {
		rec := record{Input: in}
		switch *mode {
		case modeNormalize:
			rec.Output = n.Normalize(in)
			rec.Normal = true
		case modeDecode:
			rec.Output = n.NormalizeDecode(in)
			rec.Normal = true
		case modeCheck:
			rec.Normal = n.IsNormal(in)
			if !rec.Normal {
				status = 1
			}
		}

		if *asJSON {
			return enc.Encode(rec)
		}
		if *mode == modeCheck {
			if rec.Normal {
				return nil
			}
			_, err := fmt.Fprintln(out, in)
			return err
		}
		_, err := fmt.Fprintln(out, rec.Output)
		return err
	}

	if err := eachInput(fs.Args(), stdin, emit); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return status
}

// eachInput feeds args to fn, or stdin lines when args is empty
func eachInput(args []string, stdin io.Reader, fn func(string) error) error {
	if len(args) > 0 {
		for _, a := range args {
			if err := fn(a); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if err := fn(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
