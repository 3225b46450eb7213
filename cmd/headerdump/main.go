// Command headerdump reads an HTTP message head and prints the typed
// headers it recognizes, in their re-encoded form.
package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vfaronov/typedheader"
)

var args struct {
	File     string `arg:"positional" help:"file holding the message head (default: standard input)"`
	Response bool   `arg:"-r" help:"parse a response instead of a request"`
	Verbose  bool   `arg:"-v" help:"log every decoding attempt"`
}

func main() {
	arg.MustParse(&args)
	log := newLogger(args.Verbose)
	defer func() { _ = log.Sync() }()

	in := io.Reader(os.Stdin)
	if args.File != "" {
		f, err := os.Open(args.File)
		if err != nil {
			log.Fatal("opening input", zap.Error(err))
		}
		defer f.Close()
		in = f
	}
	h, err := readHeader(bufio.NewReader(in), args.Response)
	if err != nil {
		log.Fatal("reading message head", zap.Error(err))
	}
	if n := dump(os.Stdout, h, log); n == 0 {
		log.Info("no typed headers found", zap.Int("fields", len(h)))
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func readHeader(r *bufio.Reader, response bool) (http.Header, error) {
	if response {
		resp, err := http.ReadResponse(r, nil)
		if err != nil {
			return nil, errors.Wrap(err, "parsing response")
		}
		return resp.Header, nil
	}
	req, err := http.ReadRequest(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing request")
	}
	return req.Header, nil
}

type entry struct {
	header   typedheader.Header
	describe func() string
}

// entries lists the typed headers headerdump knows about.
// Several entries may share a field name, one per credentials scheme.
func entries() []entry {
	var (
		maxAge      typedheader.AccessControlMaxAge
		age         typedheader.Age
		basic       typedheader.Authorization[typedheader.Basic]
		bearer      typedheader.Authorization[typedheader.Bearer]
		proxyBasic  typedheader.ProxyAuthorization[typedheader.Basic]
		proxyBearer typedheader.ProxyAuthorization[typedheader.Bearer]
	)
	return []entry{
		{&maxAge, func() string { return maxAge.Duration().String() }},
		{&age, func() string { return age.Duration().String() }},
		{&basic, func() string { return describeBasic(basic.Credentials) }},
		{&bearer, func() string { return describeBearer(bearer.Credentials) }},
		{&proxyBasic, func() string { return describeBasic(proxyBasic.Credentials) }},
		{&proxyBearer, func() string { return describeBearer(proxyBearer.Credentials) }},
	}
}

func describeBasic(c typedheader.Basic) string {
	return "basic, user " + strconv.Quote(c.Username)
}

func describeBearer(c typedheader.Bearer) string {
	return "bearer, " + strconv.Itoa(len(c.Token)) + "-byte token"
}

// dump writes one line per decoded header to w and returns how many
// were decoded. Present fields that no entry could decode are logged.
func dump(w io.Writer, h http.Header, log *zap.Logger) int {
	decoded := make(map[string]bool)
	failures := make(map[string]error)
	var names []string
	n := 0
	for _, e := range entries() {
		name := e.header.Name()
		if !typedheader.Has(h, e.header) {
			continue
		}
		if _, seen := decoded[name]; !seen {
			decoded[name] = false
			names = append(names, name)
		}
		if err := typedheader.Decode(h, e.header); err != nil {
			log.Debug("decoding attempt failed",
				zap.String("name", name), zap.Error(err))
			failures[name] = err
			continue
		}
		decoded[name] = true
		out := http.Header{}
		typedheader.Encode(out, e.header)
		fmt.Fprintf(w, "%s: %s (%s)\n", name,
			strings.Join(out[http.CanonicalHeaderKey(name)], ", "), e.describe())
		n++
	}
	for _, name := range names {
		if decoded[name] {
			continue
		}
		log.Warn("unparseable header",
			zap.String("name", name),
			zap.Strings("values", h.Values(name)),
			zap.Error(failures[name]))
	}
	return n
}
