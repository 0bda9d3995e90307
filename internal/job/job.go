// Package job loads matcalc job files and evaluates them with package matrix.
//
// A job names some matrices and one operation over them:
//
//	op = "inverse"
//	args = ["a"]
//	[matrices]
//	a = [[2, 5, 7], [6, 3, 4], [5, -2, -3]]
//
// TOML, YAML and JSON are accepted (by extension, through viper). Matrix
// names are case-insensitive because viper folds keys to lower case.
package job

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/densemat/matrix"
)

// ErrInvalidJob is returned for structurally bad job files: unknown op,
// wrong number of args, a scale job without a scalar, undefined or
// malformed matrices.
var ErrInvalidJob = errors.New("job: invalid job")

// Op is one evaluable operation.
type Op string

const (
	OpAdd         Op = "add"
	OpSub         Op = "sub"
	OpMul         Op = "mul"
	OpScale       Op = "scale"
	OpTranspose   Op = "transpose"
	OpDeterminant Op = "determinant"
	OpCofactors   Op = "cofactors"
	OpAdjugate    Op = "adjugate"
	OpInverse     Op = "inverse"
	OpEqual       Op = "equal"
)

// arity is the number of matrix args each op takes.
var arity = map[Op]int{
	OpAdd:         2,
	OpSub:         2,
	OpMul:         2,
	OpScale:       1,
	OpTranspose:   1,
	OpDeterminant: 1,
	OpCofactors:   1,
	OpAdjugate:    1,
	OpInverse:     1,
	OpEqual:       2,
}

// Job is a validated job file.
type Job struct {
	Op       Op
	Args     []string
	Scalar   float64
	Matrices map[string]*matrix.Dense
}

// file mirrors the on-disk layout.
type file struct {
	Op       string                 `mapstructure:"op"`
	Args     []string               `mapstructure:"args"`
	Scalar   float64                `mapstructure:"scalar"`
	Matrices map[string][][]float64 `mapstructure:"matrices"`
}

// Load reads and validates the job file at path.
func Load(path string) (*Job, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read job %s: %w", path, err)
	}

	return decode(v)
}

// Read parses a job from r. format is a viper config type: "toml", "yaml" or "json".
func Read(r io.Reader, format string) (*Job, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("read job: %w", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Job, error) {
	var f file
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decode job: %w: %w", ErrInvalidJob, err)
	}

	op := Op(strings.ToLower(strings.TrimSpace(f.Op)))
	n, ok := arity[op]
	if !ok {
		return nil, fmt.Errorf("unknown op %q (want one of %s): %w", f.Op, strings.Join(opNames(), ", "), ErrInvalidJob)
	}
	if len(f.Args) != n {
		return nil, fmt.Errorf("op %s takes %d args, got %d: %w", op, n, len(f.Args), ErrInvalidJob)
	}
	if op == OpScale && !v.IsSet("scalar") {
		return nil, fmt.Errorf("op %s needs a scalar: %w", op, ErrInvalidJob)
	}

	j := &Job{Op: op, Scalar: f.Scalar, Matrices: make(map[string]*matrix.Dense, len(f.Matrices))}
	for name, rows := range f.Matrices {
		m, err := matrix.NewFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w: %w", name, ErrInvalidJob, err)
		}
		j.Matrices[name] = m
	}
	for _, a := range f.Args {
		name := strings.ToLower(a)
		if _, ok := j.Matrices[name]; !ok {
			return nil, fmt.Errorf("undefined matrix %q: %w", a, ErrInvalidJob)
		}
		j.Args = append(j.Args, name)
	}

	return j, nil
}

func opNames() []string {
	out := make([]string, 0, len(arity))
	for op := range arity {
		out = append(out, string(op))
	}
	sort.Strings(out)

	return out
}
