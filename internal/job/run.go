package job

import (
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// Kind tells which field of a Result is set.
type Kind int

const (
	KindMatrix Kind = iota
	KindScalar
	KindBool
)

// Result of one evaluated job.
type Result struct {
	Kind   Kind
	Matrix *matrix.Dense
	Scalar float64
	Bool   bool
}

// Run evaluates the job. Named input matrices are never modified: every
// operation goes through a non-mutating form of package matrix.
// Errors from package matrix are returned wrapped with the op name, so
// errors.Is(err, matrix.ErrSingular) and friends keep working.
func (j *Job) Run() (Result, error) {
	a := j.Matrices[j.Args[0]]
	var b *matrix.Dense
	if len(j.Args) > 1 {
		b = j.Matrices[j.Args[1]]
	}

	var (
		m   *matrix.Dense
		err error
	)
	switch j.Op {
	case OpAdd:
		m, err = matrix.Sum(a, b)
	case OpSub:
		m, err = matrix.Diff(a, b)
	case OpMul:
		m, err = matrix.Product(a, b)
	case OpScale:
		m = matrix.Scaled(a, j.Scalar)
	case OpTranspose:
		m = a.Transpose()
	case OpCofactors:
		m, err = a.Cofactors()
	case OpAdjugate:
		m, err = a.Adjugate()
	case OpInverse:
		m, err = a.Inverse()
	case OpDeterminant:
		d, derr := a.Determinant()
		if derr != nil {
			return Result{}, fmt.Errorf("%s: %w", j.Op, derr)
		}
		return Result{Kind: KindScalar, Scalar: d}, nil
	case OpEqual:
		return Result{Kind: KindBool, Bool: a.Equal(b)}, nil
	default:
		return Result{}, fmt.Errorf("unknown op %q: %w", j.Op, ErrInvalidJob)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", j.Op, err)
	}

	return Result{Kind: KindMatrix, Matrix: m}, nil
}
