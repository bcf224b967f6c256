package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/tubestuff/internal/services"
	"github.com/desertthunder/tubestuff/internal/shared"
	"github.com/desertthunder/tubestuff/internal/tasks"
	"github.com/urfave/cli/v3"
)

type resolveOutput struct {
	Input string `json:"input"`
	Type  string `json:"type"`
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
}

// Resolve classifies each argument and prints one reference per input.
//
// Lookup failures are reported per input; the command fails once all inputs were printed.
func (r *Runner) Resolve(ctx context.Context, cmd *cli.Command) error {
	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return fmt.Errorf("%w: at least one input", shared.ErrMissingArgument)
	}

	r.ensureResolver()
	results := tasks.ResolveAll(ctx, r.resolver, inputs, tasks.BatchOpts{Workers: int(cmd.Int("workers"))})

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			r.logger.Error("resolve failed", "input", res.Input, "error", res.Err)
		}
	}

	if cmd.Bool("json") {
		out := make([]resolveOutput, len(results))
		for i, res := range results {
			out[i] = resolveOutput{Input: res.Input, Type: res.Reference.Kind.String(), ID: res.Reference.ID}
			if res.Err != nil {
				out[i].Error = res.Err.Error()
			}
		}
		if err := r.writeJSON(out, cmd.Bool("pretty")); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			id := res.Reference.ID
			if !res.Reference.Known() {
				id = "-"
			}
			kind := r.palette.Kind(res.Reference.Kind)
			if res.Err != nil {
				kind = r.palette.Err("error")
			}
			if err := r.writePlain("%s\t%s\t%s\n", res.Input, kind, id); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d inputs", shared.ErrLookupFailed, failed, len(inputs))
	}
	return nil
}

// Describe resolves one input and prints the channel or video it points at.
func (r *Runner) Describe(ctx context.Context, cmd *cli.Command) error {
	input := cmd.Args().First()
	if input == "" {
		return fmt.Errorf("%w: input", shared.ErrMissingArgument)
	}

	ref, err := r.resolveRef(ctx, input)
	if err != nil {
		return err
	}
	if !ref.Known() {
		return fmt.Errorf("%w: %q", shared.ErrUnknownReference, input)
	}

	svc, err := r.metadata(ctx)
	if err != nil {
		return err
	}

	desc, err := services.Describe(ctx, svc, ref)
	if err != nil {
		return err
	}

	r.logger.Debug("described reference", "ref", desc.Reference.String())
	return r.writeJSON(desc, cmd.Bool("pretty"))
}
