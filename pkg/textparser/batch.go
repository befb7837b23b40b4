package textparser

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MustParse is like Parse but panics on error.
//
// Use it only for texts whose placeholders are known to resolve.
func (p *Parser) MustParse(text string, b Bindings) string {
	out, err := p.Parse(context.Background(), text, b)
	if err != nil {
		panic(fmt.Sprintf("textparser: %v", err))
	}
	return out
}

// ParseAll scans every text concurrently against the same bindings.
//
// Results keep the input order. At most the configured concurrency
// (WithConcurrency) scans run at once. On failure it returns nil and the
// first error; texts not yet started are skipped.
// b must not be mutated until ParseAll returns.
//
// Example:
//
//	outs, err := p.ParseAll(ctx, []string{"*(a)*", "*(b)*"}, b)
func (p *Parser) ParseAll(ctx context.Context, texts []string, b Bindings) ([]string, error) {
	if texts == nil {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]string, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := p.Parse(gctx, text, b)
			if err != nil {
				return fmt.Errorf("text %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParseMap scans all string values of m recursively.
//
// Returns a new map. Non-string values are copied as-is and nested
// map[string]any values are scanned recursively. On failure it returns
// nil and the error, prefixed with the offending key.
//
// Example:
//
//	out, _ := p.ParseMap(ctx, map[string]any{
//	    "subject": "Hello *(name)*",
//	    "retries": 3, // copied as-is
//	}, b)
func (p *Parser) ParseMap(ctx context.Context, m map[string]any, b Bindings) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}

	result := make(map[string]any, len(m))
	for k, v := range m {
		parsed, err := p.parseValue(ctx, v, b)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		result[k] = parsed
	}
	return result, nil
}

// parseValue scans a single value, handling strings and nested maps.
func (p *Parser) parseValue(ctx context.Context, v any, b Bindings) (any, error) {
	switch val := v.(type) {
	case string:
		return p.Parse(ctx, val, b)
	case map[string]any:
		return p.ParseMap(ctx, val, b)
	default:
		return v, nil
	}
}
