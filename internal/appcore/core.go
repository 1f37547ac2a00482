// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"unitconv-core/convert"

	"unitconv/internal/cmdutil"
	"unitconv/internal/pipeline"
	"unitconv/internal/runutil"
	"unitconv/internal/writers"
)

type Options struct {
	Files []string

	Threads int
	Buffer  int

	Strict       bool
	Quiet        bool
	FailExitCode int

	Log *zap.Logger
}

type VisitorFunc[T any] func(pipeline.Item) T

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run drives a batch: pipeline → visit → writer. Exit codes:
//
//	0   all lines converted
//	3   I/O failure, or the first failed line under --strict
//	130 cancelled
//	o.FailExitCode when some lines failed
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	conv *convert.Converter,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	log := o.Log
	if log == nil {
		log = zap.NewNop()
	}
	outw := bufio.NewWriter(stdout)

	thr := runutil.EffectiveThreads(o.Threads)
	inCh, writeErr := wf.Start(outw, runutil.WriterBuffer(o.Buffer, thr))

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	log.Debug("batch start", zap.Strings("files", o.Files), zap.Int("threads", thr), zap.Bool("strict", o.Strict))

	counts, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr, Buffer: thr * 2},
		o.Files,
		conv,
		o.Strict,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	log.Debug("batch done", zap.Int("lines", counts.Sent), zap.Int("failed", counts.Failed))

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		var le *cmdutil.LineError
		if errors.As(perr, &le) {
			log.Error("strict mode: conversion failed", zap.String("file", le.File), zap.Int("line", le.Line), zap.Error(le.Err))
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if counts.Failed > 0 {
		cmdutil.Warnf(stderr, log, o.Quiet, "%d of %d lines failed to convert", counts.Failed, counts.Sent)
		return o.FailExitCode
	}
	return 0
}
