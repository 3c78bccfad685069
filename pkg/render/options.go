package render

// DefaultGenerator names the tool in generated file headers.
const DefaultGenerator = "intfmt-gen"

// RenderOptions carry per-run settings that do not belong in the manifest.
type RenderOptions struct {
	// Generator is written into the "Code generated by" header. Empty means
	// DefaultGenerator.
	Generator string
	// BuildTags, when set, is emitted as a //go:build constraint.
	BuildTags string
	// OmitStrings drops the string constant emitted next to each array.
	OmitStrings bool
}

// GeneratorName returns the configured generator or the default.
func (o RenderOptions) GeneratorName() string {
	if o.Generator == "" {
		return DefaultGenerator
	}
	return o.Generator
}
