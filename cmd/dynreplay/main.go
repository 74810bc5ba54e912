// dynarray/cmd/dynreplay/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sghaida/dynarray/dynarray"
)

// Script is the decoded replay input.
type Script struct {
	// Capacity is reserved before the first op.
	Capacity int  `json:"capacity"`
	Ops      []Op `json:"ops"`
}

// Op is one script entry. Which of Index, Value and N are required depends on Op.
type Op struct {
	Op    string `json:"op"` // push | pop | insert | erase | reserve | shrink | shrink_to_fit | at
	Index *int   `json:"index"`
	Value *int   `json:"value"`
	N     *int   `json:"n"`
}

// Step is one trace line, written after the op ran.
type Step struct {
	Step   int    `json:"step"`
	Op     string `json:"op"`
	Size   int    `json:"size"`
	Cap    int    `json:"cap"`
	Value  *int   `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
	Values []int  `json:"values,omitempty"`
}

// ErrNegativeCapacity is returned for a script whose "capacity" is below zero.
var ErrNegativeCapacity = errors.New("dynreplay: capacity must be >= 0")

// UnknownOpError is returned for an op name the replayer does not know.
type UnknownOpError struct{ Op string }

func (e UnknownOpError) Error() string {
	return "dynreplay: unknown op " + strconv.Quote(e.Op)
}

// MissingFieldError is returned when an op lacks a field it requires.
type MissingFieldError struct {
	Op    string
	Field string
}

func (e MissingFieldError) Error() string {
	return "dynreplay: op " + strconv.Quote(e.Op) + " requires " + strconv.Quote(e.Field)
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dynreplay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	scriptPath := fs.String("script", "", "path to the JSON operation script")
	outPath := fs.String("out", "", "write the trace here instead of stdout")
	withValues := fs.Bool("values", false, "include the live elements in every trace line")
	verbose := fs.Bool("v", false, "log reallocations to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*scriptPath) == "" {
		return fmt.Errorf("missing -script")
	}

	script, err := loadScript(*scriptPath)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if *verbose {
		logger = newLogger(stderr)
	}
	defer func() { _ = logger.Sync() }()

	out := stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", *outPath, err)
		}
		defer f.Close()
		out = f
	}

	// steps that ran before a failing op are still written
	steps, replayErr := replay(script, logger, *withValues)
	if err := writeTrace(out, steps); err != nil {
		return err
	}
	return replayErr
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		die(err.Error())
	}
}

func loadScript(path string) (Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}

	var s Script
	if err := json.Unmarshal(raw, &s); err != nil {
		return Script{}, fmt.Errorf("decode script %s: %w", path, err)
	}
	if s.Capacity < 0 {
		return Script{}, ErrNegativeCapacity
	}
	return s, nil
}

func newLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core).Named("dynreplay")
}

// replay runs the script against a fresh array and returns one Step per op
// that ran. It stops at the first op whose precondition does not hold.
func replay(s Script, logger *zap.Logger, withValues bool) ([]Step, error) {
	a := dynarray.New[int](
		dynarray.WithLogger(logger),
		dynarray.WithCapacity(s.Capacity),
	)

	steps := make([]Step, 0, len(s.Ops))
	for i, op := range s.Ops {
		st := Step{Step: i + 1, Op: op.Op}
		if err := apply(a, op, &st); err != nil {
			return steps, fmt.Errorf("step %d: %w", st.Step, err)
		}

		st.Size, st.Cap = a.Len(), a.Cap()
		if withValues {
			st.Values = a.Values()
		}
		steps = append(steps, st)
	}
	return steps, nil
}

func apply(a *dynarray.Array[int], op Op, st *Step) error {
	switch op.Op {
	case "push":
		v, err := need(op, op.Value, "value")
		if err != nil {
			return err
		}
		a.PushBack(v)

	case "pop":
		if a.Empty() {
			return dynarray.ErrEmpty
		}
		a.PopBack()

	case "insert":
		i, err := need(op, op.Index, "index")
		if err != nil {
			return err
		}
		v, err := need(op, op.Value, "value")
		if err != nil {
			return err
		}
		if i < 0 || i > a.Len() {
			return dynarray.IndexOutOfRangeError{Index: i, Bound: a.Len() + 1}
		}
		a.Insert(i, v)

	case "erase":
		i, err := need(op, op.Index, "index")
		if err != nil {
			return err
		}
		if i < 0 || i >= a.Len() {
			return dynarray.IndexOutOfRangeError{Index: i, Bound: a.Len()}
		}
		a.Erase(i)

	case "reserve":
		n, err := need(op, op.N, "n")
		if err != nil {
			return err
		}
		a.Reserve(n)

	case "shrink":
		a.Shrink()

	case "shrink_to_fit":
		a.ShrinkToFit()

	case "at":
		i, err := need(op, op.Index, "index")
		if err != nil {
			return err
		}
		v, err := a.At(i)
		if err != nil {
			st.Error = err.Error()
			return nil
		}
		st.Value = &v

	default:
		return UnknownOpError{Op: op.Op}
	}
	return nil
}

func need(op Op, p *int, field string) (int, error) {
	if p == nil {
		return 0, MissingFieldError{Op: op.Op, Field: field}
	}
	return *p, nil
}

func writeTrace(w io.Writer, steps []Step) error {
	enc := json.NewEncoder(w)
	for _, st := range steps {
		if err := enc.Encode(st); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}
	return nil
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, "dynreplay:", msg)
	os.Exit(1)
}
