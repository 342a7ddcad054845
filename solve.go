// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
)

// LinearSolve solves the system of n linear equations
//  A*x = b,
// where the n×n symmetric positive-definite matrix A is represented by the
// matrix-vector operation in a. The dimension of the problem n is determined
// by the length of b.
//
// method is an iterative method used for finding an approximate solution of
// the linear system. It must not be nil. The operations in a and settings
// must provide what the method needs.
//
// settings provide means for adjusting the iterative process. Zero values of
// the fields mean default values.
//
// If the initial residual already satisfies the tolerance, LinearSolve
// returns without calling method.Init, and Result.Stats.Iterations is zero.
// LinearSolve returns ErrIterationLimit when the iteration limit is reached,
// and passes through any error returned by the method or the preconditioner.
func LinearSolve(a MatrixOps, b []float64, method Method, settings Settings) (Result, error) {
	stats := Stats{StartTime: time.Now()}

	dim := len(b)
	if a.MatVec == nil {
		panic("krylov: nil matrix-vector multiplication")
	}
	if settings.X0 != nil && len(settings.X0) != dim {
		panic("krylov: mismatched length of initial guess")
	}

	if dim == 0 {
		return Result{Stats: stats}, nil
	}

	defaultSettings(&settings, dim)
	if settings.Tolerance < dlamchE || 1 <= settings.Tolerance {
		panic("krylov: invalid tolerance")
	}

	ctx := &Context{
		X:        make([]float64, dim),
		Residual: make([]float64, dim),
	}
	if settings.X0 != nil {
		copy(ctx.X, settings.X0)
		a.MatVec(ctx.Residual, ctx.X)
		stats.MatVec++
		floats.AddScaledTo(ctx.Residual, b, -1, ctx.Residual) // r = b - Ax
	} else {
		copy(ctx.Residual, b) // r = b
	}

	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		bnorm = 1
	}

	ctx.ResidualNorm = floats.Norm(ctx.Residual, 2)
	var err error
	if ctx.ResidualNorm/bnorm >= settings.Tolerance {
		err = iterate(a, bnorm, ctx, settings, method, &stats)
	}

	stats.ResidualNorm = ctx.ResidualNorm
	stats.Runtime = time.Since(stats.StartTime)
	return Result{
		X:     ctx.X,
		Stats: stats,
	}, err
}

func iterate(a MatrixOps, bnorm float64, ctx *Context, settings Settings, method Method, stats *Stats) error {
	logger := settings.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	method.Init(len(ctx.X))

	for {
		op, err := method.Iterate(ctx)
		if err != nil {
			return err
		}

		switch op {
		case NoOperation:

		case MatVec:
			a.MatVec(ctx.Dst, ctx.Src)
			stats.MatVec++

		case PSolve:
			if settings.PSolve == nil {
				copy(ctx.Dst, ctx.Src)
				continue
			}
			if err := settings.PSolve(ctx.Dst, ctx.Src); err != nil {
				return err
			}
			stats.PSolve++

		case CheckResidualNorm:
			ctx.Converged = ctx.ResidualNorm/bnorm < settings.Tolerance

		case EndIteration:
			stats.Iterations++
			stats.ResidualNorm = ctx.ResidualNorm
			logger.Debug().
				Int("iteration", stats.Iterations).
				Float64("relres", ctx.ResidualNorm/bnorm).
				Msg("iteration finished")
			if ctx.Converged {
				return nil
			}
			if stats.Iterations == settings.MaxIterations {
				return ErrIterationLimit
			}

		default:
			panic("krylov: invalid operation")
		}
	}
}
