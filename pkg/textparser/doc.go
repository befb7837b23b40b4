/*
Package textparser substitutes placeholders in text with caller-supplied values.

# Overview

A placeholder is a span bounded by a caller-chosen pair of markers, such
as *( and )*. The text between the markers names a binding:

	d, err := textparser.NewDelimiters("*(", ")*")
	if err != nil {
	    log.Fatal(err)
	}

	out, err := textparser.Scan("Hi *(name)*", d, textparser.Bindings{"name": "Ann"})
	// out: "Hi Ann"

# Mandatory and Optional Placeholders

A plain placeholder is mandatory. Scanning fails with ErrUnboundVariable
when its name has no binding. The name is the whole body, untrimmed.

A placeholder whose body starts with '?' is optional and must carry a
default value:

	*(?name defVal="Bob")*

The default is used when name is unbound; a binding always wins. Inside
the default, *" is a literal quote:

	*(?name defVal="*"John*"")*   // unbound: "John" with quotes

An optional placeholder without a well-formed defVal fails with
ErrMissingDefaultValue.

The escape marker '*' is also the first byte of the *( and )* markers.
A default value containing the end marker (for example `defVal="a)*"`)
ends the placeholder early; pick delimiters that do not occur in default
values.

# Strict Syntax

By default a second start marker inside a placeholder is part of its
body. WithStrictSyntax(true) rejects it with ErrSyntax instead, which
catches unterminated placeholders early:

	_, err := textparser.Scan("*(a *(b)*", d, b, textparser.WithStrictSyntax(true))
	// errors.Is(err, textparser.ErrSyntax)

# Errors

Every failure aborts the whole scan and is returned as a *ParseError
that unwraps to one sentinel: ErrConfig, ErrInvalidInput, ErrSyntax,
ErrUnterminatedPlaceholder, ErrMissingDefaultValue or ErrUnboundVariable.
Use errors.Is, errors.As or KindOf to classify it.

# Asynchronous Scans

ScanAsync runs one scan on its own goroutine and calls exactly one of
two callbacks:

	err := textparser.ScanAsync(text, d, b,
	    func(out string) { fmt.Println(out) },
	    func(err error) { log.Print(err) },
	)

Parser.Go returns a Task handle instead:

	task := p.Go(ctx, text, b)
	out, err := task.Wait(ctx)

# Batch Scans

ParseAll scans many texts concurrently against the same bindings and
ParseMap scans every string in a nested map[string]any.

# Thread Safety

Delimiters and Parser are safe for concurrent use. Bindings is a plain
map: callers must not mutate it while a scan reads it.
*/
package textparser
