package pipeline

// Pipeline is an ordered chain of processors sharing one context.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// ProcessorFunc adapts a plain function to a Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext {
	return f(ctx)
}

// Then returns a new pipeline running p's stages followed by more.
func (p *Pipeline) Then(more ...Processor) *Pipeline {
	stages := make([]Processor, 0, len(p.processors)+len(more))
	stages = append(stages, p.processors...)
	return &Pipeline{processors: append(stages, more...)}
}

// Run hands the context to every stage in turn. Stages see earlier
// errors and decide themselves whether to skip.
func (p *Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
