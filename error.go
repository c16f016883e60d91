package dangerous

// WithContext is implemented by every error this package produces. An
// enclosing [BytesReader.Context] / [StringReader.Context] scope calls
// it to annotate a propagating error with what that scope was
// attempting, widening the error's recorded input to the scope's own
// view along the way.
type WithContext interface {
	error
	// WithContext widens self's input to in (if self's input lies
	// within in) and pushes ctx onto self's context chain, returning
	// the (possibly) updated error.
	WithContext(in Input, ctx Context) error
}

// RetryClassifier is implemented by every error this package produces.
// ToRetryRequirement reports whether a longer input might change the
// outcome, and by how much.
type RetryClassifier interface {
	error
	ToRetryRequirement() (RetryRequirement, bool)
	// IsFatal reports whether no amount of additional input could
	// change the outcome.
	IsFatal() bool
}

// errorBase is embedded by every structured error. It tracks the input
// view the error was raised against, the exact byte span the failure
// points at, and the context chain accumulated as the error
// propagates outward.
type errorBase struct {
	input MaybeString
	span  Input
	ctx   ContextChain
}

func newErrorBase(span Input) errorBase {
	return errorBase{input: span.IntoMaybeString(), span: span}
}

// Input returns the (possibly widened) input view the error was last
// observed against.
func (e errorBase) Input() MaybeString { return e.input }

// Span returns the exact sub-view of Input the failure points at.
func (e errorBase) Span() Input { return e.span }

// SpanBytes returns the raw bytes of Span.
func (e errorBase) SpanBytes() []byte {
	switch v := e.span.(type) {
	case BytesInput:
		return v.Bytes()
	case StringInput:
		return []byte(v.Str())
	default:
		return nil
	}
}

// Context returns the accumulated context chain, outermost-to-innermost.
func (e errorBase) Context() []Context { return e.ctx.Backtrace() }

func (e *errorBase) withContext(in Input, ctx Context) {
	if e.span.IsWithin(in) {
		e.input = e.input.withInput(in)
	}
	e.ctx.push(ctx)
}

// boundFatalOverride reports whether e's recorded input is fully
// bounded, in which case every retry requirement is promoted to
// "fatal" at inspection time regardless of what the error itself
// computed.
func (e errorBase) boundFatalOverride() bool {
	return e.input.Input().Bound() == BoundBoth
}
